/*
Package miniconf parses MiniConf, a small INI/TOML-like configuration
language, into a Document of named sections holding ordered, typed entries.

A MiniConf file is a sequence of lines. Each line is blank, a comment, a
section header or a key/value assignment:

	# service settings
	title = Example
	enabled = yes

	[database]
	host = localhost
	port = 5432
	tags = [primary, read]
	limits = {cpu: 2, "mem max": 512}
	replica = null

Values are quoted strings (with \", \n, \t and \\ escapes), bare words,
numbers, booleans (true/yes, false/no), null, arrays and objects. Arrays
and objects may span several lines. Comments start with # and run to the
end of the line.

Entries before the first header belong to the implicit "root" section,
which every Document has even when empty. Repeating a header reopens the
section; repeating a key within a section (or within one object literal)
is an error.

1. Inspecting a Document

	doc, err := miniconf.Parse(src)
	if err != nil {
		// *miniconf.SyntaxError or *miniconf.SemanticError
	}
	for name, section := range doc.All() { // sections in name order
		for e := range section.All() { // entries in declaration order
			fmt.Println(name, e.Key, e.Value, e.Line)
		}
	}

2. Decoding into Go values

	type Config struct {
		Title    string `miniconf:"title"`
		Database struct {
			Host string   `miniconf:"host"`
			Port int      `miniconf:"port"`
			Tags []string `miniconf:"tags"`
		} `miniconf:"database"`
	}

	var cfg Config
	if err := miniconf.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

3. Encoding Go values

	b, err := miniconf.Marshal(cfg)

Marshal writes struct and map fields that hold structs or maps as sections
and everything else as root entries, in the canonical layout of
Document.WriteTo. Types can supply their own literal by implementing
Marshaler.

Colored text, JSON, YAML and TOML output live in the render package.
*/
package miniconf
