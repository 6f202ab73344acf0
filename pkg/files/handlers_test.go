// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	httptypes "github.com/docuvault/document-service/internal/http/types"
	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/types"
	"github.com/docuvault/document-service/pkg/authentication"
)

const testMaxUploadSize = 1 << 20

func newTestAPI(ctrl *gomock.Controller) (*API, *MockServiceInterface, *MockLoggerInterface) {
	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewAPI(mockService, testMaxUploadSize, mockTracer, mockMonitor, mockLogger), mockService, mockLogger
}

func scopedPrincipal() *authentication.Principal {
	return &authentication.Principal{ID: "user-123", Name: "Alice", OrganizationID: "org-456"}
}

type uploadForm struct {
	fields   map[string]string
	fileName string
	content  string
}

func (f uploadForm) encode(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range f.fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if f.fileName != "" {
		part, err := writer.CreateFormFile("file", f.fileName)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := io.Copy(part, strings.NewReader(f.content)); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func TestAPI_HandleCreate(t *testing.T) {
	createdFile := &types.File{
		ID:             1,
		Name:           "invoice-march.pdf",
		FileKey:        "org-456/0190a1b2-object",
		FileType:       types.FileTypeInvoice,
		OrganizationID: "org-456",
	}

	tests := []struct {
		name           string
		principal      *authentication.Principal
		form           uploadForm
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedKey    string
	}{
		{
			name:      "success",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"name": "invoice-march.pdf", "file_type": "invoice", "gross_value": "120.50"},
				fileName: "invoice-march.pdf",
				content:  "pdf bytes",
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateFile(gomock.Any(), "user-123", "org-456", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, in *CreateFileInput) (*types.File, error) {
						if in.Name != "invoice-march.pdf" || in.FileType != types.FileTypeInvoice {
							return nil, errors.New("wrong metadata fields")
						}
						if in.GrossValue == nil || *in.GrossValue != 120.50 {
							return nil, errors.New("wrong gross value")
						}
						return createdFile, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "org-456/0190a1b2-object",
		},
		{
			name:      "name defaults to the uploaded filename",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"file_type": "document"},
				fileName: "scan.pdf",
				content:  "pdf bytes",
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateFile(gomock.Any(), "user-123", "org-456", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, in *CreateFileInput) (*types.File, error) {
						if in.Name != "scan.pdf" {
							return nil, errors.New("name must fall back to the filename")
						}
						return createdFile, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "org-456/0190a1b2-object",
		},
		{
			name:      "bare token without an organization",
			principal: &authentication.Principal{ID: "user-123", Name: "Alice"},
			form: uploadForm{
				fields:   map[string]string{"file_type": "invoice"},
				fileName: "invoice-march.pdf",
				content:  "pdf bytes",
			},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "missing file part",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields: map[string]string{"name": "invoice-march.pdf", "file_type": "invoice"},
			},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "unknown file type",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"name": "invoice-march.pdf", "file_type": "spreadsheet"},
				fileName: "invoice-march.pdf",
				content:  "pdf bytes",
			},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "non-numeric gross value",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"name": "invoice-march.pdf", "file_type": "invoice", "gross_value": "lots"},
				fileName: "invoice-march.pdf",
				content:  "pdf bytes",
			},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "upload exceeds size limit",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"name": "huge.pdf", "file_type": "document"},
				fileName: "huge.pdf",
				content:  strings.Repeat("x", testMaxUploadSize+1),
			},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name:      "organization no longer exists",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"name": "invoice-march.pdf", "file_type": "invoice"},
				fileName: "invoice-march.pdf",
				content:  "pdf bytes",
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateFile(gomock.Any(), "user-123", "org-456", gomock.Any()).
					Return(nil, fmt.Errorf("failed to create file row: %w", storage.ErrForeignKeyViolation))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "service error",
			principal: scopedPrincipal(),
			form: uploadForm{
				fields:   map[string]string{"name": "invoice-march.pdf", "file_type": "invoice"},
				fileName: "invoice-march.pdf",
				content:  "pdf bytes",
			},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateFile(gomock.Any(), "user-123", "org-456", gomock.Any()).Return(nil, errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService, mockLogger := newTestAPI(ctrl)

			body, contentType := tt.form.encode(t)
			req := httptest.NewRequest(http.MethodPost, "/files", body)
			req.Header.Set("Content-Type", contentType)
			if tt.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()

			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}

			if tt.expectedKey != "" {
				var result httptypes.MessageResponse
				if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Message != tt.expectedKey {
					t.Errorf("expected storage key %q, got %q", tt.expectedKey, result.Message)
				}
			}
		})
	}
}

func TestAPI_HandleGet(t *testing.T) {
	file := &types.File{ID: 7, Name: "invoice-march.pdf", OrganizationID: "org-456"}

	tests := []struct {
		name           string
		principal      *authentication.Principal
		target         string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedURL    string
	}{
		{
			name:      "success includes a download url",
			principal: scopedPrincipal(),
			target:    "/files/7",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetFile(gomock.Any(), int64(7), "org-456").Return(file, "https://bucket/key?sig", nil)
			},
			expectedStatus: http.StatusOK,
			expectedURL:    "https://bucket/key?sig",
		},
		{
			name:           "bare token without an organization",
			principal:      &authentication.Principal{ID: "user-123", Name: "Alice"},
			target:         "/files/7",
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-numeric id",
			principal:      scopedPrincipal(),
			target:         "/files/not-a-number",
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "not found",
			principal: scopedPrincipal(),
			target:    "/files/7",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetFile(gomock.Any(), int64(7), "org-456").Return(nil, "", storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:      "service error",
			principal: scopedPrincipal(),
			target:    "/files/7",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetFile(gomock.Any(), int64(7), "org-456").Return(nil, "", errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService, mockLogger := newTestAPI(ctrl)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tt.principal))
			}
			w := httptest.NewRecorder()

			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}

			if tt.expectedStatus == http.StatusOK {
				var result FileResponse
				if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.URL != tt.expectedURL {
					t.Errorf("expected url %q, got %q", tt.expectedURL, result.URL)
				}
			}
		})
	}
}

func TestAPI_HandleList(t *testing.T) {
	files := []*types.File{
		{ID: 1, Name: "invoice-march.pdf"},
		{ID: 2, Name: "receipt-april.pdf"},
	}

	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedTotal  int64
	}{
		{
			name:   "success",
			target: "/files",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListFiles(gomock.Any(), "org-456", gomock.Any()).Return(files, int64(2), nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			name:   "filters are passed through",
			target: "/files?file_type=invoice&name=march&date_start=2026-03-01&page=2&size=10",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListFiles(gomock.Any(), "org-456", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, filter *types.FileFilter) ([]*types.File, int64, error) {
						if filter.FileType != types.FileTypeInvoice || filter.Name != "march" {
							return nil, 0, errors.New("wrong filter fields")
						}
						if filter.DateStart == nil || filter.DateStart.Format("2006-01-02") != "2026-03-01" {
							return nil, 0, errors.New("wrong date filter")
						}
						if filter.Page != 2 || filter.Size != 10 {
							return nil, 0, errors.New("wrong pagination")
						}
						return files, int64(2), nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			name:           "invalid date filter",
			target:         "/files?date_start=yesterday",
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid page",
			target:         "/files?page=0",
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "empty list returns 404",
			target: "/files",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListFiles(gomock.Any(), "org-456", gomock.Any()).Return([]*types.File{}, int64(0), nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "service error",
			target: "/files",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListFiles(gomock.Any(), "org-456", gomock.Any()).Return(nil, int64(0), errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService, mockLogger := newTestAPI(ctrl)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(authentication.WithPrincipal(req.Context(), scopedPrincipal()))
			w := httptest.NewRecorder()

			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}

			if tt.expectedStatus == http.StatusOK {
				var result ListFilesResponse
				if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if result.Total != tt.expectedTotal {
					t.Errorf("expected total %d, got %d", tt.expectedTotal, result.Total)
				}
			}
		})
	}
}

func TestAPI_HandleUpdate(t *testing.T) {
	newName := "renamed.pdf"
	updated := &types.File{ID: 7, Name: newName, OrganizationID: "org-456"}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: UpdateFileRequest{Name: &newName},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().UpdateFile(gomock.Any(), int64(7), "org-456", gomock.Any()).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown file type",
			requestBody:    map[string]string{"file_type": "spreadsheet"},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "not found",
			requestBody: UpdateFileRequest{Name: &newName},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().UpdateFile(gomock.Any(), int64(7), "org-456", gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "service error",
			requestBody: UpdateFileRequest{Name: &newName},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().UpdateFile(gomock.Any(), int64(7), "org-456", gomock.Any()).Return(nil, errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService, mockLogger := newTestAPI(ctrl)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPatch, "/files/7", bytes.NewBuffer(body))
			req = req.WithContext(authentication.WithPrincipal(req.Context(), scopedPrincipal()))
			w := httptest.NewRecorder()

			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
		})
	}
}

func TestAPI_HandleDelete(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/files/7",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().DeleteFile(gomock.Any(), int64(7), "org-456").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-numeric id",
			target:         "/files/not-a-number",
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			target: "/files/7",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().DeleteFile(gomock.Any(), int64(7), "org-456").Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "service error",
			target: "/files/7",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().DeleteFile(gomock.Any(), int64(7), "org-456").Return(errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService, mockLogger := newTestAPI(ctrl)

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			req = req.WithContext(authentication.WithPrincipal(req.Context(), scopedPrincipal()))
			w := httptest.NewRecorder()

			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
		})
	}
}
