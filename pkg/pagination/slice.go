// Package pagination implements slice-style paging: a page of items plus a
// has-next flag, derived without a total count.
package pagination

// Slice is one page of results. HasNext reports whether another page exists;
// there is no total count.
type Slice[T any] struct {
	Items   []T  `json:"items"`
	HasNext bool `json:"hasNext"`
}

// Limit returns the row limit a repository should request for a page of the
// given size: one extra row beyond the page, which FromRows trims off.
func Limit(size int) int {
	return size + 1
}

// Offset converts a 1-indexed page number to a row offset.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}

// FromRows builds a Slice from rows fetched with Limit(size). When size+1
// rows came back the surplus row is dropped and HasNext is set.
func FromRows[T any](rows []T, size int) Slice[T] {
	if len(rows) > size {
		return Slice[T]{Items: rows[:size:size], HasNext: true}
	}
	if rows == nil {
		rows = []T{}
	}
	return Slice[T]{Items: rows, HasNext: false}
}
