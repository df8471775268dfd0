// Package report implementa los renderizadores de exportes: listados PDF
// paginados con Maroto v2 y hojas de cálculo XLSX con excelize.
//
// Layout del listado A4:
//
//	┌───────────────────────────────────────────────┐
//	│  TÍTULO (solo página 1)                       │
//	│  CABECERA: columnas fijas por entidad          │
//	│  una línea por registro, altura fija          │
//	│  ... salto de página al agotar el alto útil   │
//	└───────────────────────────────────────────────┘
package report

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appreport "github.com/jhoicas/ferreteria-api/internal/application/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter formatea montos con separadores es (1.234,50).
var moneyPrinter = message.NewPrinter(language.Spanish)

// MarotoListRenderer implementa report.PDFRenderer usando Maroto v2.
type MarotoListRenderer struct{}

// NewMarotoListRenderer construye el renderizador.
func NewMarotoListRenderer() *MarotoListRenderer { return &MarotoListRenderer{} }

// RenderList genera el listado PDF paginado y devuelve sus bytes.
// El plan de paginación (layout.go) decide cuántos registros van en cada
// página; el título y la cabecera solo se pintan en la primera.
func (g *MarotoListRenderer) RenderList(doc *appreport.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(marginTop).WithBottomMargin(marginBottom).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	for i, bounds := range paginate(len(doc.Rows)) {
		pg := page.New()
		if i == 0 {
			pg.Add(titleRow(doc.Title))
			pg.Add(headerRow(doc.Columns))
		}
		for _, cells := range doc.Rows[bounds[0]:bounds[1]] {
			pg.Add(detailRow(doc.Columns, cells))
		}
		m.AddPages(pg)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado: %w", err)
	}
	return out.GetBytes(), nil
}

// titleRow: título del listado con subrayado.
func titleRow(title string) core.Row {
	return row.New(titleHeight).Add(
		col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			line.New(props.Line{Color: colorPrimary, Thickness: 0.5, OffsetPercent: 95}),
		),
	)
}

// headerRow: cabecera del listado, una celda por columna fija de la entidad.
func headerRow(cols []appreport.Column) core.Row {
	r := row.New(headerHeight)
	for _, c := range cols {
		r.Add(col.New(c.Grid).Add(text.New(c.Label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
		})))
	}
	return r
}

// detailRow: una línea por registro a altura fija. Opcionales ausentes quedan en blanco.
func detailRow(cols []appreport.Column, cells []any) core.Row {
	r := row.New(lineHeight)
	for i, c := range cols {
		var v any
		if i < len(cells) {
			v = cells[i]
		}
		r.Add(col.New(c.Grid).Add(text.New(formatCell(v), props.Text{
			Size: 8, Align: alignFor(v), Top: 1, Left: 1, Right: 1, Color: colorGray,
		})))
	}
	return r
}

// formatCell convierte la celda a texto; los decimales llevan separador de miles.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		f, _ := x.Float64()
		return moneyPrinter.Sprintf("$%.2f", f)
	default:
		return fmt.Sprint(x)
	}
}

func alignFor(v any) align.Type {
	switch v.(type) {
	case decimal.Decimal:
		return align.Right
	case int, int64:
		return align.Center
	default:
		return align.Left
	}
}
