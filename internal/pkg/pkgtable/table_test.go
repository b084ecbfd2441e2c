package pkgtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{"unique", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"blank", []string{"a", "", "c"}, []string{"a", "Unnamed: 1", "c"}},
		{"duplicates", []string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{"suffix taken", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.header, nil).Columns())
		})
	}
}

func TestNewPadsRowsAndWidensHeader(t *testing.T) {
	table := New([]string{"a", "b"}, [][]string{
		{"1"},
		{"1", "2", "3"},
	})

	assert.Equal(t, []string{"a", "b", "Unnamed: 2"}, table.Columns())
	assert.Equal(t, [][]string{{"1", "", ""}, {"1", "2", "3"}}, table.Rows())
	assert.Equal(t, 2, table.Len())
}

func TestSelectProjectsInRequestOrder(t *testing.T) {
	table := New([]string{"a", "b", "c"}, [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
	})

	got, err := table.Select([]string{"c", "a"})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a"}, got.Columns())
	assert.Equal(t, [][]string{{"3", "1"}, {"6", "4"}}, got.Rows())
	assert.Equal(t, []string{"a", "b", "c"}, table.Columns(), "source table must not change")
}

func TestSelectRepeatedColumn(t *testing.T) {
	table := New([]string{"a", "b"}, [][]string{{"1", "2"}})

	got, err := table.Select([]string{"a", "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, got.Columns())
	assert.Equal(t, [][]string{{"1", "1"}}, got.Rows())
}

func TestSelectMissingColumn(t *testing.T) {
	table := New([]string{"a", "b"}, [][]string{{"1", "2"}})

	_, err := table.Select([]string{"a", "zz", "yy"})
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), `"zz"`)
	assert.Contains(t, err.Error(), `"yy"`)
}

func TestHasColumn(t *testing.T) {
	table := New([]string{"a", "b"}, nil)
	assert.True(t, table.HasColumn("a"))
	assert.False(t, table.HasColumn("c"))
}
