package handler

import (
	"errors"

	"recruitly/internal/delivery/http/dto"
	"recruitly/internal/delivery/http/middleware"
	"recruitly/internal/domain/person"
	"recruitly/internal/pkg/response"
	"recruitly/internal/pkg/session"
	"recruitly/internal/pkg/validate"
	"recruitly/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc       usecase.AuthUsecase
	sessions session.Service
}

type registerRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Pnr      string `json:"pnr"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(uc usecase.AuthUsecase, sessions session.Service) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Register(c.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Pnr:      req.Pnr,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toPersonResponse(created))
}

// Login verifies credentials and delivers the session token as an HTTP-only
// cookie with a max-age matching the token expiry.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, token, err := h.uc.Login(c.Context(), usecase.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	middleware.SetSessionCookie(c, token, h.sessions.TTL())
	return response.Success(c, fiber.StatusOK, response.MessageOK, toPersonResponse(usr))
}

// Logout only clears the cookie; tokens are stateless and simply expire.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toPersonResponse(p person.Person) dto.PersonResponse {
	return dto.PersonResponse{
		ID:       p.ID,
		Name:     p.Name,
		Surname:  p.Surname,
		Email:    p.Email,
		Username: p.Username,
		Role:     string(p.Role),
	}
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var ve *validate.Error
	switch {
	case errors.As(err, &ve):
		return err
	case errors.Is(err, usecase.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusConflict, "Username, pnr or email already registered", nil, err)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
