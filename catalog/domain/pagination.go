package domain

import (
	"math"

	"encore.app/catalog/model"
)

// Page is a 1-based page request
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of ordered rows preceding the page. Pages far
// enough out to overflow saturate at math.MaxInt and simply come back empty.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// LastPage returns ceil(total/size), the number of pages of a listing
func LastPage(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Paginate builds the metadata for a page that returned count rows out of total.
func Paginate(total int64, page Page, count int) model.PaginationMeta {
	meta := model.PaginationMeta{
		Total:       total,
		PerPage:     page.Size,
		CurrentPage: page.Number,
		LastPage:    LastPage(total, page.Size),
		Count:       count,
	}

	if count > 0 {
		from := page.Offset() + 1
		to := page.Offset() + count
		meta.From = &from
		meta.To = &to
	}

	return meta
}
