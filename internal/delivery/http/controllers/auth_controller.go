package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campuscal/internal/delivery/http/helpers"
	"campuscal/internal/domain"
)

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success response body for POST /login.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and returns a signed token along with the user's role and display name. Failures use a {"message": ...} body.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} controllers.MessageResponse "User not found / Wrong password"
// @Failure 500 {object} controllers.MessageResponse "Internal server error"
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		helpers.WriteMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, role, name, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			helpers.WriteMessage(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, domain.ErrWrongPassword):
			helpers.WriteMessage(w, http.StatusBadRequest, "Wrong password")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, Role: role, Name: name})
}
