package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// TestdataFS holds the embedded sample documents.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	p := fmt.Sprintf("testdata/%s", name)
	data, err := fs.ReadFile(TestdataFS, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// ValidSamples returns the names of the embedded .ssml documents that are
// expected to parse. Documents named invalid-*.ssml are left out.
func ValidSamples() ([]string, error) {
	matches, err := fs.Glob(TestdataFS, "testdata/*.ssml")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, m := range matches {
		name := path.Base(m)
		if strings.HasPrefix(name, "invalid-") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
