package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"ewallet/internal/handlers/purses"
	"ewallet/internal/handlers/transactions"
	"ewallet/internal/handlers/users"
	"ewallet/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		UserService:     users.NewMockService(ctrl),
		PurseService:    purses.NewMockService(ctrl),
		TransferService: transactions.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserHandler := NewMockUserHandler(ctrl)
	mockPurseHandler := NewMockPurseHandler(ctrl)
	mockTransactionHandler := NewMockTransactionHandler(ctrl)

	mockUserHandler.EXPECT().CreateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetUsers(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurseHandler.EXPECT().CreatePurse(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurseHandler.EXPECT().GetPurses(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurseHandler.EXPECT().GetPurse(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurseHandler.EXPECT().UpdatePurse(gomock.Any(), gomock.Any()).AnyTimes()
	mockPurseHandler.EXPECT().DeletePurse(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockTransactionHandler.EXPECT().GetTransaction(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		UserHandler:        mockUserHandler,
		PurseHandler:       mockPurseHandler,
		TransactionHandler: mockTransactionHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/users", http.StatusOK},
		{"GET", "/api/users", http.StatusOK},
		{"GET", "/api/users/1", http.StatusOK},
		{"PUT", "/api/users/1", http.StatusOK},
		{"DELETE", "/api/users/1", http.StatusOK},
		{"POST", "/api/purses", http.StatusOK},
		{"GET", "/api/purses", http.StatusOK},
		{"GET", "/api/purses/1", http.StatusOK},
		{"PATCH", "/api/purses/1", http.StatusOK},
		{"DELETE", "/api/purses/1", http.StatusOK},
		{"POST", "/api/transactions", http.StatusOK},
		{"GET", "/api/transactions", http.StatusOK},
		{"GET", "/api/transactions/1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
