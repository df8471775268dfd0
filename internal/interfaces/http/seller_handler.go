package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

// SellerHandler maneja las peticiones HTTP de vendedores (protegido).
type SellerHandler struct {
	uc  *usecase.SellerUseCase
	aud *audit.Recorder
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.SellerUseCase, aud *audit.Recorder) *SellerHandler {
	return &SellerHandler{uc: uc, aud: aud}
}

// Create POST /sellers
func (h *SellerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	seller, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionCreate, "seller", seller.ID)
	return c.Status(fiber.StatusCreated).JSON(seller)
}

// List GET /sellers
func (h *SellerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /sellers/:id — patch parcial.
func (h *SellerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	var in dto.UpdateSellerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	seller, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionUpdate, "seller", id)
	return c.JSON(seller)
}

// Delete DELETE /sellers/:id
func (h *SellerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionDelete, "seller", id)
	return c.JSON(dto.MessageResponse{Message: "Vendedor eliminado"})
}
