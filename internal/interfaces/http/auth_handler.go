package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/auth"
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
)

// AuthHandler maneja registro, login y el saludo del dashboard.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register POST /register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	if _, err := h.uc.Register(in); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario registrado exitosamente"})
}

// Login POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	token, err := h.uc.Login(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, Message: "Login exitoso"})
}

// Dashboard GET /dashboard (protegido): devuelve la identidad del token.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{
		Message: fmt.Sprintf("Bienvenido al dashboard, usuario %s", GetUserID(c)),
	})
}
