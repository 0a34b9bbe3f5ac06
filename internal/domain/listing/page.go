// Package listing contiene la paginación y la visibilidad de columnas de las tablas del panel.
package listing

import "slices"

// Tamaños de página ofrecidos por la tabla de ventas.
var PageSizeOptions = []int{5, 10, 25, 50}

const (
	DefaultPageSize = 10
	pageWindow      = 5 // botones numéricos visibles
)

// Page una página de resultados con sus metadatos.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int   `json:"total"`
	TotalPages int   `json:"totalPages"`
	From       int   `json:"from"` // 1-based; 0 si no hay elementos
	To         int   `json:"to"`
	Pages      []int `json:"pages"`
}

// Empty indica el estado "sin datos".
func (p Page[T]) Empty() bool { return p.Total == 0 }

// Paginate corta items en la página pedida (1-based).
// page se acota a [1, totalPages]; pageSize <= 0 usa DefaultPageSize.
// El slice devuelto comparte memoria con items.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	p := Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		To:         end,
		Pages:      PageWindow(page, totalPages),
	}
	if p.Items == nil {
		p.Items = []T{}
	}
	if total > 0 {
		p.From = start + 1
	}
	return p
}

// PageWindow números de página a mostrar: hasta 5, centrados en la actual
// salvo cerca de los extremos.
func PageWindow(current, totalPages int) []int {
	n := totalPages
	if n > pageWindow {
		n = pageWindow
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		var p int
		switch {
		case totalPages <= pageWindow:
			p = i + 1
		case current <= 3:
			p = i + 1
		case current >= totalPages-2:
			p = totalPages - 4 + i
		default:
			p = current - 2 + i
		}
		out = append(out, p)
	}
	return out
}

// State estado de paginación de una tabla. Página y tamaño son independientes,
// pero cambiar el tamaño vuelve a la página 1.
type State struct {
	Page     int
	PageSize int
}

// NewState estado inicial: página 1, tamaño por defecto.
func NewState() State {
	return State{Page: 1, PageSize: DefaultPageSize}
}

// SetPageSize cambia el tamaño y resetea a la primera página.
func (s *State) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	s.PageSize = size
	s.Page = 1
}

// ValidPageSize indica si size es uno de PageSizeOptions.
func ValidPageSize(size int) bool {
	return slices.Contains(PageSizeOptions, size)
}
