package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ferreteria-api/internal/application/report"
)

// ExportHandler entrega los exportes como descarga adjunta.
type ExportHandler struct {
	uc *report.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// OrdersXLSX GET /export/orders
func (h *ExportHandler) OrdersXLSX(c *fiber.Ctx) error {
	doc, data, err := h.uc.OrdersXLSX()
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, doc, data, report.MIMEXLSX)
}

// OrdersPDF GET /export/orders/pdf
func (h *ExportHandler) OrdersPDF(c *fiber.Ctx) error {
	doc, data, err := h.uc.OrdersPDF()
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, doc, data, report.MIMEPDF)
}

// ClientsPDF GET /export/clients/pdf
func (h *ExportHandler) ClientsPDF(c *fiber.Ctx) error {
	doc, data, err := h.uc.ClientsPDF()
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, doc, data, report.MIMEPDF)
}

// ProductsPDF GET /export/products/pdf
func (h *ExportHandler) ProductsPDF(c *fiber.Ctx) error {
	doc, data, err := h.uc.ProductsPDF()
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, doc, data, report.MIMEPDF)
}

// SellersPDF GET /export/sellers/pdf
func (h *ExportHandler) SellersPDF(c *fiber.Ctx) error {
	doc, data, err := h.uc.SellersPDF()
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, doc, data, report.MIMEPDF)
}

func sendAttachment(c *fiber.Ctx, doc *report.Document, data []byte, mime string) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(data)
}
