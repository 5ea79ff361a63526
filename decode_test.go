package miniconf

import (
	"testing"

	"github.com/KimNorgaard/go-miniconf/internal/ast"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{`""`, ""},
		{`"plain"`, "plain"},
		{`"a\"b"`, `a"b`},
		{`"a\\b"`, `a\b`},
		{`"a\\"`, `a\`},
		{`"\n\t"`, "\n\t"},
		{`"\r"`, "r"},
		{`"\u00e9"`, "u00e9"},
		{`"caf` + "é" + `"`, "café"},
		{"\"two\nlines\"", "two\nlines"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.expected, unquote(tt.raw))
		})
	}
}

func TestDecodeValuePanicsOnEmptyNode(t *testing.T) {
	ds := &decodeState{depth: defaultMaxDepth}
	require.Panics(t, func() {
		_, _ = ds.decodeValue(&ast.Value{})
	})
}

func TestDecodeDepthIsRestored(t *testing.T) {
	two := "2"
	v := &ast.Value{Array: &ast.Array{Elements: []*ast.Value{
		{Array: &ast.Array{}},
		{Array: &ast.Array{Elements: []*ast.Value{{Number: &two}}}},
	}}}
	ds := &decodeState{depth: 2}
	out, err := ds.decodeValue(v)
	require.NoError(t, err)
	require.Equal(t, Array{Array{}, Array{Number(2)}}, out)
	require.Equal(t, 2, ds.depth)
}
