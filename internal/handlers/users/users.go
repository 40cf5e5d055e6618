package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"ewallet/internal/domain"
	"ewallet/internal/dto"
	"ewallet/internal/service/userservice"
	"ewallet/pkg/utils"
	"ewallet/pkg/validate"
)

type Service interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeactivateUser(ctx context.Context, id int) error
}

const birthDateLayout = "2006-01-02"

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func toResponseDTO(user *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Phone:      user.Phone,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		BirthDate:  user.BirthDate.Format(birthDateLayout),
		CreatedAt:  user.CreatedAt,
		ModifiedAt: user.ModifiedAt,
	}
}

// CreateUser godoc
//
//	@Summary		Register a new user
//	@Description	Create a user with unique username, email and phone.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UserCreateRequestDTO	true	"User payload"
//	@Success		201		{object}	dto.UserResponseDTO			"Created user"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		409		{object}	utils.Response				"Username, email or phone already taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	birthDate, _ := time.Parse(birthDateLayout, req.BirthDate)

	user, err := h.userService.CreateUser(r.Context(), &domain.User{
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(user))
}

// GetUser godoc
//
//	@Summary		Get a user
//	@Description	Retrieve an active user by id.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int						true	"User id"
//	@Success		200	{object}	dto.UserResponseDTO		"User"
//	@Failure		400	{object}	utils.Response			"Invalid id"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(user))
}

// GetUsers godoc
//
//	@Summary		List users
//	@Description	Retrieve active users, paginated.
//	@Tags			Users
//	@Produce		json
//	@Param			page	query		int					false	"Page number"
//	@Param			limit	query		int					false	"Page size"
//	@Success		200		{array}		dto.UserResponseDTO	"Users"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.PageParams(r)

	users, err := h.userService.GetUsers(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, len(users))
	for i, user := range users {
		response[i] = toResponseDTO(&user)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateUser godoc
//
//	@Summary		Update a user
//	@Description	Replace the editable fields of an active user.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User id"
//	@Param			request	body		dto.UserUpdateRequestDTO	true	"User payload"
//	@Success		200		{object}	dto.UserResponseDTO			"Updated user"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		409		{object}	utils.Response				"Username, email or phone already taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.UserUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	birthDate, _ := time.Parse(birthDateLayout, req.BirthDate)

	user, err := h.userService.UpdateUser(r.Context(), &domain.User{
		ID:        id,
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: birthDate,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(user))
}

// DeleteUser godoc
//
//	@Summary		Deactivate a user
//	@Description	Logically delete a user and all owned purses. Rows are retained.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path	int	true	"User id"
//	@Success		204	"User deactivated"
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.DeactivateUser(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, userservice.ErrUsernameTaken),
		errors.Is(err, userservice.ErrEmailTaken),
		errors.Is(err, userservice.ErrPhoneTaken):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
