// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/docuvault/document-service/internal/storage"
	"github.com/docuvault/document-service/internal/types"
)

func newTestAPI(ctrl *gomock.Controller) (*API, *MockServiceInterface, *MockLoggerInterface) {
	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewAPI(mockService, mockTracer, mockMonitor, mockLogger), mockService, mockLogger
}

func TestAPI_HandleCreate(t *testing.T) {
	createdUser := &types.User{ID: "user-123", Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "super secret"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "Alice", "alice@example.com", "super secret").Return(createdUser, nil)
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
			name:           "short password",
			requestBody:    CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "short"},
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "duplicate email",
			requestBody: CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "super secret"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "Alice", "alice@example.com", "super secret").Return(nil, storage.ErrDuplicateKey)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "service error",
			requestBody: CreateUserRequest{Name: "Alice", Email: "alice@example.com", Password: "super secret"},
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateUser(gomock.Any(), "Alice", "alice@example.com", "super secret").Return(nil, errors.New("service error"))
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

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			tt.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				body, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(body))
			}
		})
	}
}

func TestAPI_HandleList(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedTotal  int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListUsers(gomock.Any()).Return([]*types.User{
					{ID: "user-1", Name: "Alice"},
					{ID: "user-2", Name: "Bob"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  2,
		},
		{
			name: "empty list returns 404",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListUsers(gomock.Any()).Return([]*types.User{}, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("service error"))
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

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
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
				var result ListUsersResponse
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

func TestAPI_HandleGet(t *testing.T) {
	user := &types.User{ID: "user-123", Name: "Alice", Email: "alice@example.com"}

	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetUser(gomock.Any(), "user-123").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetUser(gomock.Any(), "user-123").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "service error",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().GetUser(gomock.Any(), "user-123").Return(nil, errors.New("service error"))
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

			req := httptest.NewRequest(http.MethodGet, "/users/user-123", nil)
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
