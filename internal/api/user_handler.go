package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sca-trainer/backend/internal/auth"
	"github.com/sca-trainer/backend/internal/domain/user"
)

// ── Request / Response types ────────────────────────────────────────────────

type RegisterUserRequest struct {
	FirstName string `json:"first_name" example:"Priya"`
	LastName  string `json:"last_name" example:"Sharma"`
	Email     string `json:"email" example:"priya@example.com"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
}

func (r *RegisterUserRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first_name and last_name are required")
	}
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password1 == "" || r.Password1 != r.Password2 {
		return errors.New("passwords must match and not be empty")
	}
	return nil
}

type RegisterUserResponse struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name" example:"Priya"`
	LastName  string    `json:"last_name" example:"Sharma"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// registerUser creates credentials with the auth service and a local profile.
// @Summary      Register a user
// @Description  Credentials are owned by the external auth service; only the issued ID and display names are stored locally.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterUserRequest  true  "Registration"
// @Success      201   {object}  RegisterUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string  "auth service unavailable"
// @Router       /users [post]
func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.authClient.Register(r.Context(), auth.Registration{
		Name:      req.FirstName + " " + req.LastName,
		Email:     req.Email,
		Password1: req.Password1,
		Password2: req.Password2,
	})
	if err != nil {
		var serviceErr *auth.ServiceError
		if errors.As(err, &serviceErr) && serviceErr.Status >= 400 && serviceErr.Status < 500 {
			respondError(w, http.StatusBadRequest, "registration rejected")
			return
		}
		h.logger.Error("auth registration failed", "error", err)
		respondError(w, http.StatusBadGateway, "auth service unavailable")
		return
	}

	u, err := user.New(result.ID, req.FirstName, req.LastName)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.SaveUser(u); err != nil {
		h.logger.Error("failed to save user", "user_id", u.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, RegisterUserResponse{
		ID:          result.ID,
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// getCurrentUser returns the caller's profile.
// @Summary      Get own profile
// @Tags         Users
// @Produce      json
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.GetUser(UserID(r))
	if h.handleStoreError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	})
}
