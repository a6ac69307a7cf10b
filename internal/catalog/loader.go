package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefaultPattern matches topic files when a catalog has no index.
const DefaultPattern = "*.yaml"

// IndexFile names the optional file that orders a catalog's topics.
const IndexFile = "index.yaml"

//go:embed data
var embedded embed.FS

// index is the shape of index.yaml.
type index struct {
	Title   string   `yaml:"title"`
	Tagline string   `yaml:"tagline"`
	Footer  string   `yaml:"footer"`
	Topics  []string `yaml:"topics"`
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub, DefaultPattern)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir, pattern string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), pattern)
}

// Load reads a catalog from fsys. When index.yaml is present it decides
// the topic files and their order; otherwise files matching pattern are
// loaded in name order.
func Load(fsys fs.FS, pattern string) (*Catalog, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	idx, err := readIndex(fsys)
	if err != nil {
		return nil, err
	}

	files := idx.Topics
	if len(files) == 0 {
		files, err = discover(fsys, pattern)
		if err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		Title:   idx.Title,
		Tagline: idx.Tagline,
		Topics:  make([]*Topic, 0, len(files)),
	}

	if idx.Footer != "" {
		footer, err := fs.ReadFile(fsys, idx.Footer)
		if err != nil {
			return nil, fmt.Errorf("reading footer %s: %w", idx.Footer, err)
		}
		c.Footer = string(footer)
	}

	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading topic %s: %w", name, err)
		}
		t, err := decodeTopic(data, topicKey(name))
		if err != nil {
			return nil, fmt.Errorf("decoding topic %s: %w", name, err)
		}
		c.Topics = append(c.Topics, t)
	}

	return c, nil
}

func readIndex(fsys fs.FS) (index, error) {
	var idx index
	data, err := fs.ReadFile(fsys, IndexFile)
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return idx, fmt.Errorf("reading %s: %w", IndexFile, err)
	}
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return idx, fmt.Errorf("decoding %s: %w", IndexFile, err)
	}
	return idx, nil
}

func discover(fsys fs.FS, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid catalog pattern %q", pattern)
	}
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}

	files := matches[:0]
	for _, m := range matches {
		if path.Base(m) == IndexFile {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no topic files match %q", pattern)
	}
	return files, nil
}

// topicKey derives a key from a topic file name ("systemDesign.yaml" ->
// "systemDesign").
func topicKey(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
