package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	aud *audit.Recorder
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, aud *audit.Recorder) *ProductHandler {
	return &ProductHandler{uc: uc, aud: aud}
}

// Create POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionCreate, "product", product.ID)
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /products/:id — patch parcial.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	product, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionUpdate, "product", id)
	return c.JSON(product)
}

// Delete DELETE /products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionDelete, "product", id)
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado"})
}
