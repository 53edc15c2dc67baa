package models

// Page mirrors the paginated wire envelope returned by every list
// endpoint. Number is the zero-based page index that was served.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// PageRequest carries list query parameters through unmodified; the
// server clamps out-of-range pages to an empty result.
type PageRequest struct {
	Page int
	Size int
	Sort string
}

// Page sizes the UI offers. DefaultPageSize applies until the user
// picks another.
const DefaultPageSize = 10

var PageSizes = []int{5, 10, 20, 50}
