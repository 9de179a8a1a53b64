package arrays_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/arrays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCopyRange covers valid windows and every rejected bound.
func TestCopyRange(t *testing.T) {
	t.Parallel()

	in := []int{10, 20, 30, 40, 50}
	tests := []struct {
		name       string
		start, end int
		want       []int
		wantErr    bool
	}{
		{"prefix", 0, 2, []int{10, 20}, false},
		{"middle", 1, 4, []int{20, 30, 40}, false},
		{"empty window", 2, 2, []int{}, false},
		{"start > end", 3, 1, nil, true},
		{"negative start", -1, 2, nil, true},
		{"negative end", 0, -1, nil, true},
		{"end == len", 0, 5, nil, true},
		{"end beyond len", 1, 9, nil, true},
		{"start beyond len", 7, 8, nil, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := arrays.CopyRange(in, tc.start, tc.end)
			if tc.wantErr {
				assert.ErrorIs(t, err, arrays.ErrRange)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestCopyRange_Detached ensures the copy does not alias the input.
func TestCopyRange_Detached(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	got, err := arrays.CopyRange(in, 0, 2)
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in)
}

// TestCopyRange_Empty rejects every range on an empty input.
func TestCopyRange_Empty(t *testing.T) {
	t.Parallel()

	_, err := arrays.CopyRange([]int{}, 0, 0)
	assert.ErrorIs(t, err, arrays.ErrRange)
}

// TestInsertAt covers head, middle and last-index inserts plus bounds.
func TestInsertAt(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}

	got, err := arrays.InsertAt(in, 0, 7, 8)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8, 1, 2, 3}, got)

	got, err = arrays.InsertAt(in, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9, 2, 3}, got)

	got, err = arrays.InsertAt(in, 2, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5, 6, 3}, got)

	got, err = arrays.InsertAt(in, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got, "no values is a plain copy")

	assert.Equal(t, []int{1, 2, 3}, in, "input must be untouched")

	_, err = arrays.InsertAt(in, 3, 4)
	assert.ErrorIs(t, err, arrays.ErrRange)
	_, err = arrays.InsertAt(in, -1, 4)
	assert.ErrorIs(t, err, arrays.ErrRange)
	_, err = arrays.InsertAt([]int{}, 0, 4)
	assert.ErrorIs(t, err, arrays.ErrRange)
}
