package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "ewallet/docs"
	pursehandlers "ewallet/internal/handlers/purses"
	transactionhandlers "ewallet/internal/handlers/transactions"
	userhandlers "ewallet/internal/handlers/users"
	"ewallet/internal/service"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	GetUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type PurseHandler interface {
	CreatePurse(w http.ResponseWriter, r *http.Request)
	GetPurse(w http.ResponseWriter, r *http.Request)
	GetPurses(w http.ResponseWriter, r *http.Request)
	UpdatePurse(w http.ResponseWriter, r *http.Request)
	DeletePurse(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler        UserHandler
	PurseHandler       PurseHandler
	TransactionHandler TransactionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:        userhandlers.New(s.UserService),
		PurseHandler:       pursehandlers.New(s.PurseService),
		TransactionHandler: transactionhandlers.New(s.TransferService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.UserHandler.CreateUser)
			r.Get("/", h.UserHandler.GetUsers)
			r.Get("/{id}", h.UserHandler.GetUser)
			r.Put("/{id}", h.UserHandler.UpdateUser)
			r.Delete("/{id}", h.UserHandler.DeleteUser)
		})
		r.Route("/purses", func(r chi.Router) {
			r.Post("/", h.PurseHandler.CreatePurse)
			r.Get("/", h.PurseHandler.GetPurses)
			r.Get("/{id}", h.PurseHandler.GetPurse)
			r.Patch("/{id}", h.PurseHandler.UpdatePurse)
			r.Delete("/{id}", h.PurseHandler.DeletePurse)
		})
		r.Route("/transactions", func(r chi.Router) {
			r.Post("/", h.TransactionHandler.CreateTransaction)
			r.Get("/", h.TransactionHandler.GetTransactions)
			r.Get("/{id}", h.TransactionHandler.GetTransaction)
		})
	})

	return r
}
