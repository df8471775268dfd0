package report

import (
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

// MIME types de los binarios exportados.
const (
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEPDF  = "application/pdf"
)

// ExportUseCase arma el snapshot de cada colección y lo entrega al renderizador.
// Una pasada completa por export; no reanudable ni cancelable.
type ExportUseCase struct {
	reports repository.ReportRepository
	clients repository.ClientRepository
	prods   repository.ProductRepository
	sellers repository.SellerRepository
	pdf     PDFRenderer
	sheet   SpreadsheetRenderer
}

// NewExportUseCase construye el caso de uso de exportes.
func NewExportUseCase(
	reports repository.ReportRepository,
	clients repository.ClientRepository,
	prods repository.ProductRepository,
	sellers repository.SellerRepository,
	pdf PDFRenderer,
	sheet SpreadsheetRenderer,
) *ExportUseCase {
	return &ExportUseCase{
		reports: reports,
		clients: clients,
		prods:   prods,
		sellers: sellers,
		pdf:     pdf,
		sheet:   sheet,
	}
}

// OrdersXLSX exporta todas las órdenes como hoja de cálculo (ordenes.xlsx).
func (uc *ExportUseCase) OrdersXLSX() (*Document, []byte, error) {
	doc, err := uc.ordersDocument()
	if err != nil {
		return nil, nil, err
	}
	doc.Filename = "ordenes.xlsx"
	data, err := uc.sheet.RenderSheet(doc)
	return doc, data, err
}

// OrdersPDF exporta el listado de órdenes como PDF paginado.
func (uc *ExportUseCase) OrdersPDF() (*Document, []byte, error) {
	doc, err := uc.ordersDocument()
	if err != nil {
		return nil, nil, err
	}
	doc.Filename = "ordenes.pdf"
	data, err := uc.pdf.RenderList(doc)
	return doc, data, err
}

// ClientsPDF exporta el listado de clientes como PDF paginado.
func (uc *ExportUseCase) ClientsPDF() (*Document, []byte, error) {
	list, err := uc.clients.List()
	if err != nil {
		return nil, nil, err
	}
	doc := &Document{
		Title:    "Listado de Clientes",
		Filename: "clientes.pdf",
		Sheet:    "Clientes",
		Columns: []Column{
			{Label: "ID", Grid: 1},
			{Label: "Nombre", Grid: 3},
			{Label: "Email", Grid: 3},
			{Label: "Teléfono", Grid: 2},
			{Label: "Dirección", Grid: 3},
		},
	}
	for _, c := range list {
		doc.Rows = append(doc.Rows, []any{c.ID, c.Name, c.Email, c.Phone, c.Address})
	}
	data, err := uc.pdf.RenderList(doc)
	return doc, data, err
}

// ProductsPDF exporta el catálogo de productos como PDF paginado.
func (uc *ExportUseCase) ProductsPDF() (*Document, []byte, error) {
	list, err := uc.prods.List()
	if err != nil {
		return nil, nil, err
	}
	doc := &Document{
		Title:    "Listado de Productos",
		Filename: "productos.pdf",
		Sheet:    "Productos",
		Columns: []Column{
			{Label: "ID", Grid: 1},
			{Label: "Nombre", Grid: 3},
			{Label: "Descripción", Grid: 4},
			{Label: "Precio", Grid: 2},
			{Label: "Stock", Grid: 1},
			{Label: "Categoría", Grid: 1},
		},
	}
	for _, p := range list {
		doc.Rows = append(doc.Rows, []any{p.ID, p.Name, p.Description, p.Price, p.Stock, p.Category})
	}
	data, err := uc.pdf.RenderList(doc)
	return doc, data, err
}

// SellersPDF exporta el listado de vendedores como PDF paginado.
func (uc *ExportUseCase) SellersPDF() (*Document, []byte, error) {
	list, err := uc.sellers.List()
	if err != nil {
		return nil, nil, err
	}
	doc := &Document{
		Title:    "Listado de Vendedores",
		Filename: "vendedores.pdf",
		Sheet:    "Vendedores",
		Columns: []Column{
			{Label: "ID", Grid: 1},
			{Label: "Nombre", Grid: 4},
			{Label: "Zona", Grid: 2},
			{Label: "Teléfono", Grid: 2},
			{Label: "Email", Grid: 3},
		},
	}
	for _, s := range list {
		doc.Rows = append(doc.Rows, []any{s.ID, s.Name, s.Zone, s.Phone, s.Email})
	}
	data, err := uc.pdf.RenderList(doc)
	return doc, data, err
}

func (uc *ExportUseCase) ordersDocument() (*Document, error) {
	rows, err := uc.reports.OrdersWithNames()
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Title: "Listado de Órdenes",
		Sheet: "Ordenes",
		Columns: []Column{
			{Label: "ID", Grid: 1},
			{Label: "Cliente", Grid: 4},
			{Label: "Vendedor", Grid: 3},
			{Label: "Fecha", Grid: 2},
			{Label: "Total", Grid: 2},
		},
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, []any{r.ID, r.ClientName, r.SellerName, r.Date, r.Total})
	}
	return doc, nil
}
