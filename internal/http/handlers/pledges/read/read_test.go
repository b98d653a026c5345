package read

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
	"github.com/magabrotheeeer/pledge-customizer/internal/storage/repository"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Pledge(ctx context.Context, id uuid.UUID) (*models.Pledge, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Pledge), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	id := uuid.MustParse("6f1c2b4e-8d3a-4f5b-9c7e-1a2b3c4d5e6f")

	tests := []struct {
		name           string
		param          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешное чтение пледжа",
			param: id.String(),
			setupMock: func(m *MockService) {
				m.On("Pledge", mock.Anything, id).Return(&models.Pledge{ID: id, Total: 24000}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":24000`,
		},
		{
			name:           "некорректный id в URL",
			param:          "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:  "пледж не найден",
			param: id.String(),
			setupMock: func(m *MockService) {
				m.On("Pledge", mock.Anything, id).Return(nil, fmt.Errorf("pledge.Pledge: %w", repository.ErrPledgeNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"pledge not found"}`,
		},
		{
			name:  "ошибка сервиса",
			param: id.String(),
			setupMock: func(m *MockService) {
				m.On("Pledge", mock.Anything, id).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not read pledge"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodGet, "/pledges/"+tt.param, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.param)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			New(logger, mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
