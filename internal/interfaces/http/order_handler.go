package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP de órdenes y sus líneas de detalle.
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	aud *audit.Recorder
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, aud *audit.Recorder) *OrderHandler {
	return &OrderHandler{uc: uc, aud: aud}
}

// Create POST /orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	order, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionCreate, "order", order.ID)
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /orders/:id — patch parcial.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	order, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionUpdate, "order", id)
	return c.JSON(order)
}

// Delete DELETE /orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionDelete, "order", id)
	return c.JSON(dto.MessageResponse{Message: "Orden eliminada"})
}

// AddProduct POST /orders/:id/add_product
func (h *OrderHandler) AddProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	detail, err := h.uc.AddProduct(id, in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionCreate, "order_detail", detail.ID)
	return c.Status(fiber.StatusCreated).JSON(detail)
}

// Details GET /orders/:id/details
func (h *OrderHandler) Details(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	list, err := h.uc.DetailsForOrder(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// UpdateDetail PUT /order_details/:id — patch parcial.
func (h *OrderHandler) UpdateDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	var in dto.UpdateOrderDetailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	detail, err := h.uc.UpdateDetail(id, in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionUpdate, "order_detail", id)
	return c.JSON(detail)
}

// DeleteDetail DELETE /order_details/:id
func (h *OrderHandler) DeleteDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.DeleteDetail(id); err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionDelete, "order_detail", id)
	return c.JSON(dto.MessageResponse{Message: "Detalle eliminado"})
}
