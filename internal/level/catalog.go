package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned when a catalog has no file for a level number.
var ErrNotFound = errors.New("level: not found")

// Entry describes one numbered level file in a catalog.
type Entry struct {
	Number int
	File   string
}

// Catalog resolves level numbers to files named level<N>.yaml, .yml or .json
// in the root of a file system.
type Catalog struct {
	fsys   fs.FS
	source string
}

// NewCatalog creates a catalog over fsys. Source is a label used in errors.
func NewCatalog(fsys fs.FS, source string) *Catalog {
	return &Catalog{fsys: fsys, source: source}
}

// Builtin returns the catalog of levels shipped inside the binary.
func Builtin() *Catalog {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewCatalog(sub, "builtin")
}

// Dir returns a catalog reading level files from a directory.
func Dir(path string) *Catalog {
	return NewCatalog(os.DirFS(path), path)
}

// Source returns the label the catalog was created with.
func (c *Catalog) Source() string {
	return c.source
}

// List returns all numbered levels sorted by number. When several files share
// a number, the first in extension order (yaml, yml, json) is kept.
func (c *Catalog) List() ([]Entry, error) {
	dirEntries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("level: cannot list %s: %w", c.source, err)
	}

	byNumber := make(map[int]Entry)
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		n, rank, ok := parseFileName(de.Name())
		if !ok {
			continue
		}
		if prev, exists := byNumber[n]; exists {
			_, prevRank, _ := parseFileName(prev.File)
			if prevRank <= rank {
				continue
			}
		}
		byNumber[n] = Entry{Number: n, File: de.Name()}
	}

	entries := make([]Entry, 0, len(byNumber))
	for _, e := range byNumber {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries, nil
}

// Exists reports whether the catalog has level n.
func (c *Catalog) Exists(n int) bool {
	_, err := c.lookup(n)
	return err == nil
}

// Load parses level n into dst. On failure dst is left untouched.
func (c *Catalog) Load(n int, dst *Level) error {
	file, err := c.lookup(n)
	if err != nil {
		return err
	}

	format, err := FormatFromPath(file)
	if err != nil {
		return err
	}

	data, err := fs.ReadFile(c.fsys, file)
	if err != nil {
		return fmt.Errorf("level: cannot read %s/%s: %w", c.source, file, err)
	}

	if err := dst.LoadBytes(data, format); err != nil {
		return fmt.Errorf("level: %s/%s: %w", c.source, file, err)
	}
	return nil
}

func (c *Catalog) lookup(n int) (string, error) {
	for _, ext := range Extensions() {
		name := "level" + strconv.Itoa(n) + ext
		if _, err := fs.Stat(c.fsys, name); err == nil {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: level %d in %s", ErrNotFound, n, c.source)
}

// parseFileName extracts N from level<N>.<ext> and ranks the extension.
func parseFileName(name string) (n, rank int, ok bool) {
	if !strings.HasPrefix(name, "level") {
		return 0, 0, false
	}
	for i, ext := range Extensions() {
		if !strings.HasSuffix(name, ext) {
			continue
		}
		digits := name[len("level") : len(name)-len(ext)]
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || strconv.Itoa(n) != digits {
			return 0, 0, false
		}
		return n, i, true
	}
	return 0, 0, false
}
