package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnector(t *testing.T) {
	tests := []struct {
		name        string
		parentsLast []bool
		want        string
	}{
		{"root", nil, ""},
		{"middle child", []bool{false}, "├── "},
		{"last child", []bool{true}, "╰── "},
		{"under a last ancestor", []bool{true, true}, "    ╰── "},
		{"under an ancestor with siblings", []bool{false, true}, "│   ╰── "},
		{"deep", []bool{false, true, false}, "│       ├── "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Connector(tt.parentsLast))
		})
	}
}

func TestConnectorBarsOnlyWhereSiblingsFollow(t *testing.T) {
	parentsLast := []bool{true, false, true, false}
	got := []rune(Connector(parentsLast))
	for i, last := range parentsLast[:len(parentsLast)-1] {
		bar := got[i*4] == '│'
		assert.Equal(t, !last, bar, "ancestor %d", i)
	}
}

func TestAppendLastDoesNotAlias(t *testing.T) {
	base := make([]bool, 1, 8)
	a := appendLast(base, true)
	b := appendLast(base, false)
	assert.Equal(t, []bool{false, true}, a)
	assert.Equal(t, []bool{false, false}, b)
}
