package miniconf_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/KimNorgaard/go-miniconf"
	"github.com/stretchr/testify/require"
)

const sample = "title = Example\nenabled = true\n\n[database]\nhost = localhost\ntags = [primary, read]\n"

func mustParse(t *testing.T, src string, opts ...miniconf.Option) *miniconf.Document {
	t.Helper()
	doc, err := miniconf.Parse(src, opts...)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func section(t *testing.T, doc *miniconf.Document, name string) *miniconf.Section {
	t.Helper()
	s, ok := doc.Section(name)
	require.True(t, ok, "section [%s] not found", name)
	return s
}

func TestParseMinimal(t *testing.T) {
	doc := mustParse(t, "key = value\n")
	require.Equal(t, 1, doc.Len())

	root := section(t, doc, "root")
	require.Equal(t, []miniconf.Entry{
		{Key: "key", Value: miniconf.String("value"), Line: 1},
	}, root.Entries())
}

func TestParseSample(t *testing.T) {
	doc := mustParse(t, sample)
	require.Equal(t, []string{"database", "root"}, doc.Names())

	root := section(t, doc, "root")
	require.Equal(t, []miniconf.Entry{
		{Key: "title", Value: miniconf.String("Example"), Line: 1},
		{Key: "enabled", Value: miniconf.Bool(true), Line: 2},
	}, root.Entries())

	db := section(t, doc, "database")
	require.Equal(t, []miniconf.Entry{
		{Key: "host", Value: miniconf.String("localhost"), Line: 5},
		{Key: "tags", Value: miniconf.Array{miniconf.String("primary"), miniconf.String("read")}, Line: 6},
	}, db.Entries())
}

func TestParseEmptyInputs(t *testing.T) {
	for _, input := range []string{"", "\n", "# just a comment\n# and another", "   \n\t\n"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			doc := mustParse(t, input)
			require.Equal(t, []string{"root"}, doc.Names())
			require.Zero(t, doc.Root().Len())
		})
	}
}

func TestParseSectionOrder(t *testing.T) {
	doc := mustParse(t, "[zeta]\na = 1\n[alpha]\nb = 2\n")
	require.Equal(t, []string{"alpha", "root", "zeta"}, doc.Names())

	var names []string
	for name, s := range doc.All() {
		require.Equal(t, name, s.Name())
		names = append(names, name)
	}
	require.Equal(t, doc.Names(), names)

	sections := doc.Sections()
	require.Len(t, sections, 3)
	require.Equal(t, "alpha", sections[0].Name())
	require.Equal(t, "zeta", sections[2].Name())
}

func TestParseSectionNamesAreCaseSensitive(t *testing.T) {
	doc := mustParse(t, "[DB]\na = 1\n[db]\na = 2\n")
	require.Equal(t, []string{"DB", "db", "root"}, doc.Names())
}

func TestParseEmptySectionIsKept(t *testing.T) {
	doc := mustParse(t, "[empty]\n# nothing here\n[full]\nk = v\n")
	empty := section(t, doc, "empty")
	require.Zero(t, empty.Len())
	require.Equal(t, 1, section(t, doc, "full").Len())
}

func TestParseRepeatedHeaderAccumulates(t *testing.T) {
	doc := mustParse(t, "[a]\nx = 1\n[b]\ny = 2\n[a]\nz = 3\n")
	a := section(t, doc, "a")
	require.Equal(t, 2, a.Len())
	entries := a.Entries()
	require.Equal(t, "x", entries[0].Key)
	require.Equal(t, "z", entries[1].Key)
	require.Equal(t, 6, entries[1].Line)
}

func TestParseEntryCountMatchesDistinctKeys(t *testing.T) {
	var src strings.Builder
	for i := range 50 {
		if i%10 == 0 {
			fmt.Fprintf(&src, "[s%d]\n", i/10)
		}
		fmt.Fprintf(&src, "k%d = %d\n", i, i)
	}
	doc := mustParse(t, src.String())
	require.Zero(t, doc.Root().Len())
	for i := range 5 {
		require.Equal(t, 10, section(t, doc, fmt.Sprintf("s%d", i)).Len())
	}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		input    string
		expected miniconf.Value
	}{
		{`"a\"b"`, miniconf.String(`a"b`)},
		{`"tab\there"`, miniconf.String("tab\there")},
		{`"line\nbreak"`, miniconf.String("line\nbreak")},
		{`"back\\slash"`, miniconf.String(`back\slash`)},
		{`"keep\q"`, miniconf.String("keepq")},
		{`""`, miniconf.String("")},
		{"bare_word-1", miniconf.String("bare_word-1")},
		{"42", miniconf.Number(42)},
		{"-3.14", miniconf.Number(-3.14)},
		{"0.5", miniconf.Number(0.5)},
		{"true", miniconf.Bool(true)},
		{"yes", miniconf.Bool(true)},
		{"false", miniconf.Bool(false)},
		{"no", miniconf.Bool(false)},
		{"Yes", miniconf.String("Yes")},
		{"null", miniconf.Null{}},
		{"[]", miniconf.Array{}},
		{"[1, 2, 3]", miniconf.Array{miniconf.Number(1), miniconf.Number(2), miniconf.Number(3)}},
		{"[a, [b, []]]", miniconf.Array{
			miniconf.String("a"),
			miniconf.Array{miniconf.String("b"), miniconf.Array{}},
		}},
		{"{}", miniconf.Object{}},
		{`{port: 80, "full name": "x y", nested: {on: yes}}`, miniconf.Object{
			"port":      miniconf.Number(80),
			"full name": miniconf.String("x y"),
			"nested":    miniconf.Object{"on": miniconf.Bool(true)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc := mustParse(t, "k = "+tt.input)
			require.Equal(t, tt.expected, doc.Root().Value("k"))
		})
	}
}

func TestParseDuplicateKey(t *testing.T) {
	_, err := miniconf.Parse("name = \"a\"\nname = \"b\"\n")
	require.Error(t, err)
	require.ErrorIs(t, err, miniconf.ErrDuplicateKey)
	require.NotErrorIs(t, err, miniconf.ErrInvalidValue)

	var serr *miniconf.SemanticError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, miniconf.DuplicateKey, serr.Kind)
	require.Equal(t, 2, serr.Line)
	require.Equal(t, "root", serr.Section)
	require.Equal(t, "name", serr.Key)
	require.Contains(t, serr.Message, `"name"`)
	require.Contains(t, serr.Message, "[root]")
	require.Equal(t, `miniconf: duplicate key on line 2: key "name" already defined in [root]`, err.Error())
}

func TestParseDuplicateKeyAcrossRepeatedHeader(t *testing.T) {
	_, err := miniconf.Parse("[a]\nx = 1\n[b]\nx = 2\n\n[a]\nx = 3\n")
	var serr *miniconf.SemanticError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, miniconf.DuplicateKey, serr.Kind)
	require.Equal(t, 7, serr.Line)
	require.Equal(t, "a", serr.Section)
}

func TestParseDuplicateObjectKey(t *testing.T) {
	_, err := miniconf.Parse("[srv]\nopts = {\n  a: 1,\n  a: 2\n}\n")
	var serr *miniconf.SemanticError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, miniconf.DuplicateKey, serr.Kind)
	require.Equal(t, 4, serr.Line)
	require.Equal(t, "srv", serr.Section)
	require.Equal(t, "a", serr.Key)
}

func TestParseInvalidNumber(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	_, err := miniconf.Parse("ok = 1\n\nbig = " + huge + "\n")
	require.ErrorIs(t, err, miniconf.ErrInvalidValue)

	var serr *miniconf.SemanticError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, miniconf.InvalidValue, serr.Kind)
	require.Equal(t, 3, serr.Line)
	require.Equal(t, "big", serr.Key)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := miniconf.Parse("title = ok\nkey value\n")
	require.ErrorIs(t, err, miniconf.ErrSyntax)

	var serr *miniconf.SyntaxError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 2, serr.Line)
	require.Equal(t, 5, serr.Column)
	require.Equal(t, "value", serr.Unexpected)
	require.True(t, strings.HasPrefix(err.Error(), "miniconf: syntax error at line 2, column 5: "), err.Error())
}

func TestParseSyntaxErrorWithFilename(t *testing.T) {
	_, err := miniconf.Parse("k = @", miniconf.WithFilename("app.mc"))
	var serr *miniconf.SyntaxError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, "app.mc", serr.Filename)
	require.Equal(t, 1, serr.Line)
	require.Equal(t, 5, serr.Column)
	require.True(t, strings.HasPrefix(err.Error(), "miniconf: app.mc:1:5: syntax error: "), err.Error())
}

func TestParseSyntaxErrorAtEndOfInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{"unclosed array", "\nkey = [1, 2", 2, 12},
		{"missing value", "title = ok\nkey = ", 2, 7},
		{"unclosed header", "[db", 1, 4},
		{"unclosed object after newline", "k = {a: 1,\n", 2, 1},
		{"multibyte last line", "s = \"é\"\nk = [\"ü\"", 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := miniconf.Parse(tt.input)
			var serr *miniconf.SyntaxError
			require.True(t, errors.As(err, &serr), "error is %v", err)
			require.Equal(t, tt.line, serr.Line, serr.Message)
			require.Equal(t, tt.column, serr.Column, serr.Message)
			require.Equal(t, "end of input", serr.Unexpected)
		})
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	// The duplicate on line 2 is reported even though line 3 is also bad.
	_, err := miniconf.Parse("a = 1\na = 2\nb = [1, 1" + strings.Repeat("0", 400) + "]\n")
	var serr *miniconf.SemanticError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 2, serr.Line)
}

func TestMaxDepth(t *testing.T) {
	_, err := miniconf.Parse("k = [1]", miniconf.MaxDepth(1))
	require.NoError(t, err)

	_, err = miniconf.Parse("k = [{a: 1}]", miniconf.MaxDepth(1))
	require.ErrorIs(t, err, miniconf.ErrInvalidValue)

	_, err = miniconf.Parse("k = 1", miniconf.MaxDepth(0))
	require.EqualError(t, err, "miniconf: max depth must be a positive integer")
}

func TestWithRootSection(t *testing.T) {
	doc := mustParse(t, "a = 1\n[b]\n", miniconf.WithRootSection("main"))
	require.Equal(t, []string{"b", "main"}, doc.Names())
	require.Equal(t, "main", doc.RootName())
	require.Equal(t, 1, doc.Root().Len())

	_, err := miniconf.Parse("", miniconf.WithRootSection("not valid"))
	require.Error(t, err)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mustParse(t, sample, miniconf.WithLogger(logger))
	out := buf.String()
	require.Contains(t, out, "section created")
	require.Contains(t, out, "section=database")
	require.Contains(t, out, "entry added")
	require.Contains(t, out, "key=tags")
}

func TestParseReader(t *testing.T) {
	doc, err := miniconf.ParseReader(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())

	_, err = miniconf.ParseReader(nil)
	require.Error(t, err)

	doc, err = miniconf.ParseBytes([]byte(sample))
	require.NoError(t, err)
	require.Equal(t, 2, doc.Len())
}

func TestParseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	docs := make([]*miniconf.Document, 16)
	for i := range docs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := fmt.Sprintf("[s%d]\nn = %d\n", i, i)
			doc, err := miniconf.Parse(src)
			if err == nil {
				docs[i] = doc
			}
		}()
	}
	wg.Wait()

	for i, doc := range docs {
		require.NotNil(t, doc)
		s := section(t, doc, fmt.Sprintf("s%d", i))
		require.Equal(t, miniconf.Number(i), s.Value("n"))
	}
}

func TestGrammar(t *testing.T) {
	require.Contains(t, miniconf.Grammar(), "KeyValue")
}
