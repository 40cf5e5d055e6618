package purses

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ewallet/internal/domain"
	"ewallet/internal/dto"
	"ewallet/internal/service/purseservice"
)

func NewMock(t *testing.T) (*PurseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreatePurseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"user_id":1,"currency":"USD"}`,
			prepareMock: func() {
				service.EXPECT().
					CreatePurse(gomock.Any(), 1, domain.CurrencyUSD).
					Return(&domain.Purse{ID: 1, UserID: 1, Currency: domain.CurrencyUSD, Balance: 0}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"user_id":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:         "Unsupported currency",
			body:         `{"user_id":1,"currency":"JPY"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Owner not found",
			body: `{"user_id":42,"currency":"EUR"}`,
			prepareMock: func() {
				service.EXPECT().CreatePurse(gomock.Any(), 42, domain.CurrencyEUR).Return(nil, purseservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "user not found",
		},
		{
			name: "Internal server error",
			body: `{"user_id":1,"currency":"UAH"}`,
			prepareMock: func() {
				service.EXPECT().CreatePurse(gomock.Any(), 1, domain.CurrencyUAH).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/purses", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreatePurse(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetPurseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		expectedBody dto.PurseResponseDTO
	}{
		{
			name: "Successful retrieval",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetPurse(gomock.Any(), 1).
					Return(&domain.Purse{ID: 1, UserID: 2, Currency: domain.CurrencyGBP, Balance: 150.5}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.PurseResponseDTO{ID: 1, UserID: 2, Currency: "GBP", Balance: 150.5},
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "42",
			prepareMock: func() {
				service.EXPECT().GetPurse(gomock.Any(), 42).Return(nil, purseservice.ErrPurseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/purses/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.GetPurse(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.PurseResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetPursesHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("All purses", func(t *testing.T) {
		service.EXPECT().GetPurses(gomock.Any(), 0, 10, 0).Return([]domain.Purse{{ID: 1}, {ID: 2}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/purses", nil)
		w := httptest.NewRecorder()

		handler.GetPurses(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.PurseResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
	})

	t.Run("Filtered by owner", func(t *testing.T) {
		service.EXPECT().GetPurses(gomock.Any(), 7, 10, 0).Return([]domain.Purse{{ID: 3, UserID: 7}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/purses?user_id=7", nil)
		w := httptest.NewRecorder()

		handler.GetPurses(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().GetPurses(gomock.Any(), 0, 10, 0).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/api/purses", nil)
		w := httptest.NewRecorder()

		handler.GetPurses(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUpdatePurseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful update",
			id:   "1",
			body: `{"balance":500}`,
			prepareMock: func() {
				service.EXPECT().UpdateBalance(gomock.Any(), 1, 500.0).
					Return(&domain.Purse{ID: 1, Balance: 500, Currency: domain.CurrencyUSD}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Negative balance",
			id:           "1",
			body:         `{"balance":-10}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "42",
			body: `{"balance":500}`,
			prepareMock: func() {
				service.EXPECT().UpdateBalance(gomock.Any(), 42, 500.0).Return(nil, purseservice.ErrPurseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/purses/"+tt.id, bytes.NewBufferString(tt.body)), "id", tt.id)
			w := httptest.NewRecorder()

			handler.UpdatePurse(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeletePurseHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deactivation",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().DeactivatePurse(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Not found",
			id:   "42",
			prepareMock: func() {
				service.EXPECT().DeactivatePurse(gomock.Any(), 42).Return(purseservice.ErrPurseNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/purses/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.DeletePurse(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
