package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestString(t *testing.T) {
	file := &File{
		Lines: []*Line{
			{Entry: &KeyValue{Key: "title", Value: &Value{Bare: ptr("Example")}}},
			{},
			{Section: &Section{Name: "build-target"}},
			{Entry: &KeyValue{
				Key: "tags",
				Value: &Value{Array: &Array{Elements: []*Value{
					{Quoted: ptr(`"a b"`)},
					{Number: ptr("-1.5")},
					{Bool: ptr("yes")},
					{Null: true},
				}}},
			}},
			{Entry: &KeyValue{
				Key: "opts",
				Value: &Value{Object: &Object{Members: []*Member{
					{Key: ptr("depth"), Value: &Value{Number: ptr("3")}},
					{Quoted: ptr(`"x y"`), Value: &Value{Array: &Array{}}},
				}}},
			}},
		},
	}

	expected := "title = Example\n" +
		"\n" +
		"[build-target]\n" +
		`tags = ["a b", -1.5, yes, null]` + "\n" +
		`opts = {depth: 3, "x y": []}` + "\n"
	require.Equal(t, expected, file.String())
}
