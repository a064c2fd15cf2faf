package catalog

import "encore.app/catalog/domain"

type pagination struct {
	DefaultPerPage int
	MaxPerPage     int
}

// page applies defaults to a requested page: missing values fall back to
// page 1 and the default page size, oversized pages are capped.
func (p pagination) page(number, perPage int) domain.Page {
	if number <= 0 {
		number = 1
	}
	if perPage <= 0 {
		perPage = p.DefaultPerPage
	}
	if p.MaxPerPage > 0 && perPage > p.MaxPerPage {
		perPage = p.MaxPerPage
	}
	return domain.Page{Number: number, Size: perPage}
}
