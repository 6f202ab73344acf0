// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/docuvault/document-service/internal/http/types"
	"github.com/docuvault/document-service/internal/logging"
	"github.com/docuvault/document-service/internal/monitoring"
	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/tracing"
	"github.com/docuvault/document-service/internal/types"
	"github.com/docuvault/document-service/pkg/authentication"
)

type createFileForm struct {
	Name       string `validate:"required"`
	FileType   string `validate:"required,oneof=document invoice receipt report"`
	FileOrigin string `validate:"omitempty,oneof=upload integration"`
}

type UpdateFileRequest struct {
	Name       *string  `json:"name" validate:"omitempty,min=1"`
	FileType   *string  `json:"file_type" validate:"omitempty,oneof=document invoice receipt report"`
	GrossValue *float64 `json:"gross_value"`
	NetValue   *float64 `json:"net_value"`
}

type FileResponse struct {
	*types.File
	URL string `json:"url,omitempty"`
}

type ListFilesResponse struct {
	Files []*types.File `json:"files"`
	Total int64         `json:"total"`
}

type API struct {
	service       ServiceInterface
	maxUploadSize int64
	validate      *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	maxUploadSize int64,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:       service,
		maxUploadSize: maxUploadSize,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}

// RegisterEndpoints mounts the file routes. The mux passed in must run the
// authentication and organization-scope middlewares first; every handler
// trusts the organization claim on the principal.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/files", a.handleCreate)
	mux.Get("/files", a.handleList)
	mux.Get("/files/{id}", a.handleGet)
	mux.Patch("/files/{id}", a.handleUpdate)
	mux.Delete("/files/{id}", a.handleDelete)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "files.API.handleCreate")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok || principal.OrganizationID == "" {
		httptypes.WriteError(w, http.StatusUnauthorized, "no active organization")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadSize)
	if err := r.ParseMultipartForm(a.maxUploadSize); err != nil {
		httptypes.WriteError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
		return
	}

	content, header, err := r.FormFile("file")
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer content.Close()

	if header.Size > a.maxUploadSize {
		httptypes.WriteError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
		return
	}

	form := createFileForm{
		Name:       r.FormValue("name"),
		FileType:   r.FormValue("file_type"),
		FileOrigin: r.FormValue("file_origin"),
	}
	if form.Name == "" {
		form.Name = header.Filename
	}
	if err := a.validate.Struct(form); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "name and a valid file_type are required")
		return
	}

	grossValue, err := parseOptionalFloat(r.FormValue("gross_value"))
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "gross_value must be numeric")
		return
	}
	netValue, err := parseOptionalFloat(r.FormValue("net_value"))
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "net_value must be numeric")
		return
	}

	file, err := a.service.CreateFile(ctx, principal.ID, principal.OrganizationID, &CreateFileInput{
		Name:        form.Name,
		FileType:    form.FileType,
		FileOrigin:  form.FileOrigin,
		GrossValue:  grossValue,
		NetValue:    netValue,
		Content:     content,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			httptypes.WriteError(w, http.StatusNotFound, "no such organization")
			return
		}
		a.logger.Errorf("failed to create file: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create file")
		return
	}

	// Clients fetch the content later via the key, so that is the whole response.
	httptypes.WriteJSON(w, http.StatusOK, httptypes.MessageResponse{Message: file.FileKey})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "files.API.handleGet")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok || principal.OrganizationID == "" {
		httptypes.WriteError(w, http.StatusUnauthorized, "no active organization")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "file id must be numeric")
		return
	}

	file, url, err := a.service.GetFile(ctx, id, principal.OrganizationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "file not found")
			return
		}
		a.logger.Errorf("failed to get file: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get file")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, FileResponse{File: file, URL: url})
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "files.API.handleList")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok || principal.OrganizationID == "" {
		httptypes.WriteError(w, http.StatusUnauthorized, "no active organization")
		return
	}

	filter, err := parseFileFilter(r)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	files, total, err := a.service.ListFiles(ctx, principal.OrganizationID, filter)
	if err != nil {
		a.logger.Errorf("failed to list files: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list files")
		return
	}
	if len(files) == 0 {
		httptypes.WriteError(w, http.StatusNotFound, "no files found")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ListFilesResponse{Files: files, Total: total})
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "files.API.handleUpdate")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok || principal.OrganizationID == "" {
		httptypes.WriteError(w, http.StatusUnauthorized, "no active organization")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "file id must be numeric")
		return
	}

	var req UpdateFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "invalid file metadata")
		return
	}

	file, err := a.service.UpdateFile(ctx, id, principal.OrganizationID, &UpdateFileInput{
		Name:       req.Name,
		FileType:   req.FileType,
		GrossValue: req.GrossValue,
		NetValue:   req.NetValue,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "file not found")
			return
		}
		a.logger.Errorf("failed to update file: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to update file")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, file)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "files.API.handleDelete")
	defer span.End()

	principal, ok := authentication.PrincipalFromContext(ctx)
	if !ok || principal.OrganizationID == "" {
		httptypes.WriteError(w, http.StatusUnauthorized, "no active organization")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "file id must be numeric")
		return
	}

	if err := a.service.DeleteFile(ctx, id, principal.OrganizationID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httptypes.WriteError(w, http.StatusNotFound, "file not found")
			return
		}
		a.logger.Errorf("failed to delete file: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to delete file")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.MessageResponse{Message: "file deleted"})
}

func parseOptionalFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Bare dates are accepted too.
		t, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

func parseFileFilter(r *http.Request) (*types.FileFilter, error) {
	q := r.URL.Query()

	filter := &types.FileFilter{
		Name:       q.Get("name"),
		FileType:   q.Get("file_type"),
		FileOrigin: q.Get("file_origin"),
		UserName:   q.Get("user_name"),
	}

	var err error
	if filter.DateStart, err = parseOptionalDate(q.Get("date_start")); err != nil {
		return nil, errors.New("date_start must be a valid date")
	}
	if filter.DateEnd, err = parseOptionalDate(q.Get("date_end")); err != nil {
		return nil, errors.New("date_end must be a valid date")
	}
	if filter.GrossValue, err = parseOptionalFloat(q.Get("gross_value")); err != nil {
		return nil, errors.New("gross_value must be numeric")
	}
	if filter.NetValue, err = parseOptionalFloat(q.Get("net_value")); err != nil {
		return nil, errors.New("net_value must be numeric")
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || page < 1 {
			return nil, errors.New("page must be a positive integer")
		}
		filter.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || size < 1 {
			return nil, errors.New("size must be a positive integer")
		}
		filter.Size = size
	}

	return filter, nil
}
