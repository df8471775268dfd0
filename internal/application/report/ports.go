package report

// Column cabecera de una columna del listado. Grid es el ancho relativo
// en la rejilla de 12 columnas del renderizador PDF.
type Column struct {
	Label string
	Grid  int
}

// Document snapshot tabular de una colección, listo para renderizar.
// Las celdas admiten string, enteros y decimal.Decimal; los valores
// monetarios los formatea cada renderizador a su manera.
type Document struct {
	Title    string
	Filename string
	Sheet    string // nombre de la hoja en el XLSX
	Columns  []Column
	Rows     [][]any
}

// PDFRenderer pinta el Document como listado PDF paginado.
type PDFRenderer interface {
	RenderList(doc *Document) ([]byte, error)
}

// SpreadsheetRenderer serializa el Document como hoja de cálculo.
type SpreadsheetRenderer interface {
	RenderSheet(doc *Document) ([]byte, error)
}
