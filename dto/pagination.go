package dto

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Page is a validated page request: Page >= 1 and 1 <= PerPage <= MaxPerPage.
type Page struct {
	Page    int
	PerPage int
}

// NewPage normalizes raw values, falling back to defaults for anything below 1
// and capping page so the offset stays representable.
func NewPage(page, perPage int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	// keeps Offset from overflowing; such a page is always past the end
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return Page{Page: page, PerPage: perPage}
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Pagination is the metadata returned next to a page of items.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

// Paginate computes metadata for total matching rows.
func (p Page) Paginate(total int64) Pagination {
	pages := 0
	if total > 0 {
		pages = int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	return Pagination{Page: p.Page, PerPage: p.PerPage, Total: total, Pages: pages}
}
