package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows_TrimsSurplusRow(t *testing.T) {
	rows := []int{1, 2, 3}

	slice := FromRows(rows, 2)

	assert.Equal(t, []int{1, 2}, slice.Items)
	assert.True(t, slice.HasNext)
}

func TestFromRows_LastPage(t *testing.T) {
	slice := FromRows([]int{1}, 2)

	assert.Equal(t, []int{1}, slice.Items)
	assert.False(t, slice.HasNext)
}

func TestFromRows_ExactlyFullPage(t *testing.T) {
	slice := FromRows([]int{1, 2}, 2)

	assert.Equal(t, []int{1, 2}, slice.Items)
	assert.False(t, slice.HasNext)
}

func TestFromRows_NilRows(t *testing.T) {
	slice := FromRows[int](nil, 5)

	require.NotNil(t, slice.Items)
	assert.Empty(t, slice.Items)
	assert.False(t, slice.HasNext)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 0, Offset(0, 10), "pages below 1 clamp to the first page")
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 3, Limit(2))
}

// Paging through 5 rows with page size 2 yields pages of sizes 2, 2, 1 and
// has-next flags true, true, false; concatenated pages reproduce the source
// order with no duplicates or omissions.
func TestFromRows_PagingOverFiveRows(t *testing.T) {
	source := []int{50, 40, 30, 20, 10}
	size := 2

	fetch := func(page int) []int {
		start := Offset(page, size)
		end := start + Limit(size)
		if start > len(source) {
			return nil
		}
		if end > len(source) {
			end = len(source)
		}
		return source[start:end]
	}

	var collected []int
	wantSizes := []int{2, 2, 1}
	wantHasNext := []bool{true, true, false}

	for page := 1; page <= 3; page++ {
		slice := FromRows(fetch(page), size)
		assert.Len(t, slice.Items, wantSizes[page-1], "page %d", page)
		assert.Equal(t, wantHasNext[page-1], slice.HasNext, "page %d", page)
		collected = append(collected, slice.Items...)
	}

	assert.Equal(t, source, collected)
}
