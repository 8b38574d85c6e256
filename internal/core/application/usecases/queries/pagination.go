// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases.
package queries

// Pagination describes one page of a listing. NextPage and PrevPage are nil
// on the last and first page.
type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
	NextPage   *int
	PrevPage   *int
}

// NewPagination computes the page metadata for total items split into pages
// of perPage. perPage must be positive.
//
// Example:
//
//	p := NewPagination(1, 10, 25)
//	// p.TotalPages == 3, p.HasNext == true, *p.NextPage == 2, p.PrevPage == nil
func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	p := Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}
