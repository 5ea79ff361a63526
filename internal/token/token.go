package token

// Type is the name of a token type as registered with the lexer.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	EOF Type = "EOF" // End of file

	// Literals
	IDENT  Type = "Ident"  // key, database, build-target
	NUMBER Type = "Number" // -3.14
	STRING Type = "String" // "hello world", quotes included

	// Delimiters: [ ] { } = , :
	PUNCT Type = "Punct"

	// Layout
	EOL        Type = "EOL"        // \n, terminates a top-level item
	COMMENT    Type = "Comment"    // # a comment
	WHITESPACE Type = "Whitespace" // spaces, tabs and carriage returns
)

// Keyword classifies an identifier that has a meaning of its own when used
// as a value.
type Keyword int

const (
	NONE Keyword = iota
	TRUE
	FALSE
	NULL
)

var keywords = map[string]Keyword{
	"true":  TRUE,
	"yes":   TRUE,
	"false": FALSE,
	"no":    FALSE,
	"null":  NULL,
}

// LookupKeyword checks the keywords table for an identifier.
// Matching is case-sensitive; "True" is a plain identifier.
func LookupKeyword(ident string) Keyword {
	return keywords[ident]
}

// IsKeyword reports whether ident is reserved as a value keyword.
func IsKeyword(ident string) bool {
	return LookupKeyword(ident) != NONE
}
