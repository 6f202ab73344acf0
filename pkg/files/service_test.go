// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package files -destination ./mock_files.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package files -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package files -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package files -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_CreateFile(t *testing.T) {
	userID := "user-123"
	orgID := "org-456"
	input := &CreateFileInput{
		Name:        "invoice-march.pdf",
		FileType:    types.FileTypeInvoice,
		Content:     strings.NewReader("pdf bytes"),
		ContentType: "application/pdf",
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockObjectStoreInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name: "success - upload first, then metadata row",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				var uploadedKey string
				mockStore.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "application/pdf").DoAndReturn(
					func(_ context.Context, key string, _ any, _ string) (string, error) {
						if !strings.HasPrefix(key, orgID+"/") {
							return "", errors.New("object key must be prefixed with the organization id")
						}
						uploadedKey = key
						return key, nil
					})
				mockStorage.EXPECT().CreateFile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f *types.File) (*types.File, error) {
						if f.FileKey != uploadedKey {
							return nil, errors.New("row must reference the uploaded object")
						}
						if f.UserID != userID || f.OrganizationID != orgID {
							return nil, errors.New("wrong ownership fields")
						}
						if f.FileOrigin != types.FileOriginUpload {
							return nil, errors.New("origin must default to upload")
						}
						f.ID = 1
						return f, nil
					})
			},
		},
		{
			name: "upload fails - no row written",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable"))
			},
			expectedErr: true,
		},
		{
			name: "row insert fails - uploaded object is removed again",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				var uploadedKey string
				mockStore.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, key string, _ any, _ string) (string, error) {
						uploadedKey = key
						return key, nil
					})
				mockStorage.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
				mockStore.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, key string) error {
						if key != uploadedKey {
							return errors.New("cleanup must target the uploaded object")
						}
						return nil
					})
			},
			expectedErr: true,
		},
		{
			name: "row insert fails and cleanup fails - logged, original error surfaced",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				mockStore.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("key", nil)
				mockStorage.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
				mockStore.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("bucket unavailable"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStore := NewMockObjectStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockStore, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "files.Service.CreateFile").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockStore, mockLogger)

			file, err := s.CreateFile(context.Background(), userID, orgID, input)

			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if file != nil {
					t.Error("no file must be returned on failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if file == nil || file.ID != 1 {
				t.Errorf("expected created file, got %+v", file)
			}
		})
	}
}

func TestService_GetFile(t *testing.T) {
	orgID := "org-456"
	file := &types.File{ID: 7, Name: "invoice-march.pdf", FileKey: "org-456/key", OrganizationID: orgID}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockObjectStoreInterface)
		expectedURL string
		expectedErr error
	}{
		{
			name: "success - presigned url for the stored object",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface) {
				mockStorage.EXPECT().GetFileByID(gomock.Any(), int64(7), orgID).Return(file, nil)
				mockStore.EXPECT().SignedURL(gomock.Any(), file.FileKey).Return("https://bucket/org-456/key?sig", nil)
			},
			expectedURL: "https://bucket/org-456/key?sig",
		},
		{
			name: "not found in this organization",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface) {
				mockStorage.EXPECT().GetFileByID(gomock.Any(), int64(7), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "presigning fails",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface) {
				mockStorage.EXPECT().GetFileByID(gomock.Any(), int64(7), orgID).Return(file, nil)
				mockStore.EXPECT().SignedURL(gomock.Any(), file.FileKey).Return("", errors.New("bucket unavailable"))
			},
			expectedErr: errors.New("failed to presign object url"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStore := NewMockObjectStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockStore, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "files.Service.GetFile").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockStore)

			got, url, err := s.GetFile(context.Background(), 7, orgID)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if errors.Is(tc.expectedErr, storage.ErrNotFound) && !errors.Is(err, storage.ErrNotFound) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != file.ID {
				t.Errorf("expected file %d, got %d", file.ID, got.ID)
			}
			if url != tc.expectedURL {
				t.Errorf("expected url %q, got %q", tc.expectedURL, url)
			}
		})
	}
}

func TestService_ListFiles(t *testing.T) {
	orgID := "org-456"
	expectedFiles := []*types.File{
		{ID: 1, Name: "invoice-march.pdf"},
		{ID: 2, Name: "receipt-april.pdf"},
	}

	testCases := []struct {
		name          string
		setupMocks    func(*MockStorageInterface)
		expectedTotal int64
		expectedErr   bool
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListFiles(gomock.Any(), orgID, gomock.Any()).Return(expectedFiles, int64(2), nil)
			},
			expectedTotal: 2,
		},
		{
			name: "storage error",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListFiles(gomock.Any(), orgID, gomock.Any()).Return(nil, int64(0), errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStore := NewMockObjectStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockStore, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "files.Service.ListFiles").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			files, total, err := s.ListFiles(context.Background(), orgID, &types.FileFilter{})

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(files) != len(expectedFiles) {
				t.Errorf("expected %d files, got %d", len(expectedFiles), len(files))
			}
			if total != tc.expectedTotal {
				t.Errorf("expected total %d, got %d", tc.expectedTotal, total)
			}
		})
	}
}

func TestService_UpdateFile(t *testing.T) {
	orgID := "org-456"
	newName := "renamed.pdf"
	newGross := 120.5

	testCases := []struct {
		name        string
		input       *UpdateFileInput
		setupMocks  func(*MockStorageInterface)
		check       func(*testing.T, *types.File)
		expectedErr error
	}{
		{
			name:  "only provided fields change",
			input: &UpdateFileInput{Name: &newName, GrossValue: &newGross},
			setupMocks: func(mockStorage *MockStorageInterface) {
				existing := &types.File{ID: 7, Name: "invoice-march.pdf", FileType: types.FileTypeInvoice, OrganizationID: orgID}
				mockStorage.EXPECT().GetFileByID(gomock.Any(), int64(7), orgID).Return(existing, nil)
				mockStorage.EXPECT().UpdateFile(gomock.Any(), existing).Return(nil)
			},
			check: func(t *testing.T, f *types.File) {
				if f.Name != newName {
					t.Errorf("expected name %q, got %q", newName, f.Name)
				}
				if f.FileType != types.FileTypeInvoice {
					t.Errorf("file type must be untouched, got %q", f.FileType)
				}
				if f.GrossValue == nil || *f.GrossValue != newGross {
					t.Errorf("expected gross value %v, got %v", newGross, f.GrossValue)
				}
				if f.NetValue != nil {
					t.Errorf("net value must be untouched, got %v", f.NetValue)
				}
			},
		},
		{
			name:  "not found in this organization",
			input: &UpdateFileInput{Name: &newName},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetFileByID(gomock.Any(), int64(7), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:  "update fails",
			input: &UpdateFileInput{Name: &newName},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetFileByID(gomock.Any(), int64(7), orgID).Return(&types.File{ID: 7, OrganizationID: orgID}, nil)
				mockStorage.EXPECT().UpdateFile(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStore := NewMockObjectStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockStore, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "files.Service.UpdateFile").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			file, err := s.UpdateFile(context.Background(), 7, orgID, tc.input)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, file)
		})
	}
}

func TestService_DeleteFile(t *testing.T) {
	orgID := "org-456"
	deleted := &types.File{ID: 7, FileKey: "org-456/key", OrganizationID: orgID}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockObjectStoreInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success - row first, then the object",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().DeleteFile(gomock.Any(), int64(7), orgID).Return(deleted, nil)
				mockStore.EXPECT().Delete(gomock.Any(), deleted.FileKey).Return(nil)
			},
		},
		{
			name: "not found in this organization",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().DeleteFile(gomock.Any(), int64(7), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "object delete fails - logged, delete still succeeds",
			setupMocks: func(mockStorage *MockStorageInterface, mockStore *MockObjectStoreInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().DeleteFile(gomock.Any(), int64(7), orgID).Return(deleted, nil)
				mockStore.EXPECT().Delete(gomock.Any(), deleted.FileKey).Return(errors.New("bucket unavailable"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStore := NewMockObjectStoreInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockStore, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "files.Service.DeleteFile").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockStore, mockLogger)

			err := s.DeleteFile(context.Background(), 7, orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
