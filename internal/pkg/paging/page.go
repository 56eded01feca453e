// Package paging provides the shared page-response shape for list endpoints.
package paging

// Page is the envelope returned by every paginated query.
// TotalPages is derived from TotalElements and Size; Last reports whether
// this is the final page.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPage assembles a Page from a slice of items and the total row count.
// A non-positive size yields a single page holding everything.
func NewPage[T any](content []T, page, size int, totalElements int64) Page[T] {
	if content == nil {
		content = make([]T, 0)
	}

	totalPages := 1
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
		if totalPages == 0 {
			totalPages = 1
		}
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}

// Offset converts page/size into a row offset for SQL queries.
func Offset(page, size int) int {
	if page < 0 || size <= 0 {
		return 0
	}
	return page * size
}
