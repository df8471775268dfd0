package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/audit"
	"github.com/jhoicas/ferreteria-api/internal/application/dto"
	"github.com/jhoicas/ferreteria-api/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP de clientes (protegido).
type ClientHandler struct {
	uc  *usecase.ClientUseCase
	aud *audit.Recorder
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase, aud *audit.Recorder) *ClientHandler {
	return &ClientHandler{uc: uc, aud: aud}
}

// Create POST /clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	client, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionCreate, "client", client.ID)
	return c.Status(fiber.StatusCreated).JSON(client)
}

// List GET /clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(list)
}

// Update PUT /clients/:id — patch parcial.
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	client, err := h.uc.Update(id, in)
	if err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionUpdate, "client", id)
	return c.JSON(client)
}

// Delete DELETE /clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return domainError(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return domainError(c, err)
	}
	h.aud.Record(userIDInt64(c), audit.ActionDelete, "client", id)
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado"})
}
