package report

// Geometría del listado PDF en mm sobre página A4.
// El título y la fila de cabecera se emiten solo en la primera página;
// las siguientes continúan la enumeración desde el margen superior.
const (
	pageHeight   = 297.0
	marginTop    = 10.0
	marginBottom = 10.0
	titleHeight  = 12.0
	headerHeight = 8.0
	lineHeight   = 7.0
)

func usableHeight() float64 {
	return pageHeight - marginTop - marginBottom
}

// RowsFirstPage registros que caben en la primera página, debajo del título y la cabecera.
func RowsFirstPage() int {
	return int((usableHeight() - titleHeight - headerHeight) / lineHeight)
}

// RowsPerPage registros que caben en una página de continuación (sin cabecera).
func RowsPerPage() int {
	return int(usableHeight() / lineHeight)
}

// PageCount páginas que produce un listado de n registros.
// Siempre al menos una: el título y la cabecera se emiten aunque no haya filas.
func PageCount(n int) int {
	first := RowsFirstPage()
	if n <= first {
		return 1
	}
	rest := n - first
	per := RowsPerPage()
	return 1 + (rest+per-1)/per
}

// paginate reparte n registros en rangos [desde, hasta) por página.
func paginate(n int) [][2]int {
	first := RowsFirstPage()
	per := RowsPerPage()

	var pages [][2]int
	end := first
	if end > n {
		end = n
	}
	pages = append(pages, [2]int{0, end})
	for start := end; start < n; start += per {
		stop := start + per
		if stop > n {
			stop = n
		}
		pages = append(pages, [2]int{start, stop})
	}
	return pages
}
