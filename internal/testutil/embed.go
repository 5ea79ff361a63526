package testutil

import (
	"embed"
	"fmt"
	"io/fs"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	path := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Sources returns every embedded MiniConf source keyed by file name.
func Sources() (map[string][]byte, error) {
	names, err := fs.Glob(TestdataFS, "testdata/*.mc")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(names))
	for _, path := range names {
		data, err := fs.ReadFile(TestdataFS, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read test data file '%s': %w", path, err)
		}
		out[path[len("testdata/"):]] = data
	}
	return out, nil
}
