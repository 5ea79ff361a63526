package miniconf_test

import (
	"testing"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/stretchr/testify/require"
)

func TestSectionLookup(t *testing.T) {
	doc := mustParse(t, sample)

	_, ok := doc.Section("missing")
	require.False(t, ok)

	db := section(t, doc, "database")
	e, ok := db.Get("host")
	require.True(t, ok)
	require.Equal(t, miniconf.Entry{Key: "host", Value: miniconf.String("localhost"), Line: 5}, e)

	_, ok = db.Get("port")
	require.False(t, ok)
	require.Nil(t, db.Value("port"))
}

func TestSectionEntriesAreCopies(t *testing.T) {
	doc := mustParse(t, sample)
	root := doc.Root()

	entries := root.Entries()
	entries[0].Key = "changed"
	require.Equal(t, "title", root.Entries()[0].Key)
}

func TestSectionAllKeepsDeclarationOrder(t *testing.T) {
	doc := mustParse(t, "[s]\nz = 1\na = 2\nm = 3\n")
	var keys []string
	for e := range section(t, doc, "s").All() {
		keys = append(keys, e.Key)
	}
	require.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestDocumentMap(t *testing.T) {
	doc := mustParse(t, sample)
	require.Equal(t, map[string]any{
		"root": map[string]any{
			"title":   "Example",
			"enabled": true,
		},
		"database": map[string]any{
			"host": "localhost",
			"tags": []any{"primary", "read"},
		},
	}, doc.Map())
}
