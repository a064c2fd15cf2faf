package model

// PaginationMeta describes one page of an offset-paginated listing
type PaginationMeta struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	Count       int   `json:"count"`
	From        *int  `json:"from"`
	To          *int  `json:"to"`
}
