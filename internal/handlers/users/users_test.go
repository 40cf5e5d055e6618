package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ewallet/internal/domain"
	"ewallet/internal/dto"
	"ewallet/internal/service/userservice"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
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

func TestCreateUserHandler(t *testing.T) {
	handler, service := NewMock(t)
	birthDate, _ := time.Parse(birthDateLayout, "1990-05-15")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"username":"jdoe","email":"jdoe@example.com","phone":"+12025550101","first_name":"John","last_name":"Doe","birth_date":"1990-05-15"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateUser(gomock.Any(), &domain.User{
						Username:  "jdoe",
						Email:     "jdoe@example.com",
						Phone:     "+12025550101",
						FirstName: "John",
						LastName:  "Doe",
						BirthDate: birthDate,
					}).
					Return(&domain.User{ID: 1, Username: "jdoe", Email: "jdoe@example.com", Phone: "+12025550101", BirthDate: birthDate}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"username":invalid}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:         "Missing username",
			body:         `{"email":"jdoe@example.com","phone":"+12025550101","birth_date":"1990-05-15"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed email",
			body:         `{"username":"jdoe","email":"not-an-email","phone":"+12025550101","birth_date":"1990-05-15"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed phone",
			body:         `{"username":"jdoe","email":"jdoe@example.com","phone":"12345","birth_date":"1990-05-15"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Username taken",
			body: `{"username":"jdoe","email":"jdoe@example.com","phone":"+12025550101","birth_date":"1990-05-15"}`,
			prepareMock: func() {
				service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, userservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "username already taken",
		},
		{
			name: "Internal server error",
			body: `{"username":"jdoe","email":"jdoe@example.com","phone":"+12025550101","birth_date":"1990-05-15"}`,
			prepareMock: func() {
				service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.CreateUser(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
		expectedBody dto.UserResponseDTO
	}{
		{
			name: "Successful retrieval",
			id:   "1",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{ID: 1, Username: "jdoe"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.UserResponseDTO{ID: 1, Username: "jdoe", BirthDate: "0001-01-01"},
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
				service.EXPECT().GetUser(gomock.Any(), 42).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.GetUser(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.UserResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Default pagination", func(t *testing.T) {
		service.EXPECT().GetUsers(gomock.Any(), 10, 0).Return([]domain.User{{ID: 1}, {ID: 2}}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		w := httptest.NewRecorder()

		handler.GetUsers(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.UserResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 2)
	})

	t.Run("Explicit page", func(t *testing.T) {
		service.EXPECT().GetUsers(gomock.Any(), 5, 10).Return([]domain.User{}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/users?page=3&limit=5", nil)
		w := httptest.NewRecorder()

		handler.GetUsers(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().GetUsers(gomock.Any(), 10, 0).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		w := httptest.NewRecorder()

		handler.GetUsers(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"username":"jdoe","email":"jdoe@example.com","phone":"+12025550101","first_name":"John","last_name":"Doe","birth_date":"1990-05-15"}`

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
			body: body,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1, Username: "jdoe"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			body:         body,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "42",
			body: body,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Email taken",
			id:   "1",
			body: body,
			prepareMock: func() {
				service.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil, userservice.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withURLParam(httptest.NewRequest(http.MethodPut, "/api/users/"+tt.id, bytes.NewBufferString(tt.body)), "id", tt.id)
			w := httptest.NewRecorder()

			handler.UpdateUser(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestDeleteUserHandler(t *testing.T) {
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
				service.EXPECT().DeactivateUser(gomock.Any(), 1).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Not found",
			id:   "42",
			prepareMock: func() {
				service.EXPECT().DeactivateUser(gomock.Any(), 42).Return(userservice.ErrUserNotFound)
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

			r := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/users/"+tt.id, nil), "id", tt.id)
			w := httptest.NewRecorder()

			handler.DeleteUser(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
