// Package store persists address-book cards as .vcf files under one root
// directory.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const ext = ".vcf"

var (
	ErrInvalidID = errors.New("store: invalid card id")
	ErrNotFound  = errors.New("store: card not found")
)

// Store is a filesystem persistence adapter scoped to its root.
type Store struct {
	root string
}

// New constructs a store rooted at dir; empty falls back to local/book.
func New(dir string) Store {
	resolved := strings.TrimSpace(dir)
	if resolved == "" {
		resolved = filepath.Join("local", "book")
	}
	return Store{root: resolved}
}

// Root returns the configured root directory.
func (s Store) Root() string {
	return s.root
}

// Put writes one card body under the given id.
func (s Store) Put(id, text string) error {
	p, err := s.resolve(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p, []byte(text), 0o644)
}

// Get reads one card body by id.
func (s Store) Get(id string) (string, error) {
	p, err := s.resolve(id)
	if err != nil {
		return "", err
	}
	out, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return string(out), nil
}

// Delete removes one card by id. Deleting a missing card is not an error.
func (s Store) Delete(id string) error {
	p, err := s.resolve(id)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// List returns every stored card id, sorted.
func (s Store) List() ([]string, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0)
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		ids = append(ids, strings.TrimSuffix(rel, ext))
		return nil
	})
	sort.Strings(ids)
	return ids, nil
}

// resolve maps an id to its file path, refusing anything that could escape
// the root.
func (s Store) resolve(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.Contains(id, "..") || filepath.IsAbs(id) {
		return "", ErrInvalidID
	}
	root, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	p := filepath.Clean(filepath.Join(root, id+ext))
	if !isWithin(p, root) {
		return "", fmt.Errorf("%w: path escapes root", ErrInvalidID)
	}
	return p, nil
}

func isWithin(path, root string) bool {
	p := filepath.Clean(path)
	r := filepath.Clean(root)
	if p == r {
		return true
	}
	return strings.HasPrefix(p, r+string(os.PathSeparator))
}
