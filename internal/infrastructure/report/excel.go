package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appreport "github.com/jhoicas/ferreteria-api/internal/application/report"
)

// ExcelRenderer implementa report.SpreadsheetRenderer usando excelize.
type ExcelRenderer struct{}

// NewExcelRenderer construye el renderizador.
func NewExcelRenderer() *ExcelRenderer { return &ExcelRenderer{} }

// RenderSheet serializa el Document como XLSX: fila de cabecera en negrita
// y una fila por registro, valores numéricos como números.
func (g *ExcelRenderer) RenderSheet(doc *appreport.Document) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := doc.Sheet
	if sheet == "" {
		sheet = "Hoja1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	for i, c := range doc.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, c.Label); err != nil {
			return nil, fmt.Errorf("xlsx: escribir cabecera: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("xlsx: aplicar estilo: %w", err)
		}
	}

	for ri, cells := range doc.Rows {
		for ci, v := range cells {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, fmt.Errorf("xlsx: celda: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
				return nil, fmt.Errorf("xlsx: escribir celda: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue traduce tipos de dominio a tipos que excelize persiste como número.
func cellValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
