package fontres

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is reported when a ref matches nothing under the fonts
// directory, neither at its nominal path nor anywhere below the root.
var ErrNotFound = errors.New("fontres: font file not found")

// fontExtensions are the file types List reports. Resolve is
// deliberately not filtered by extension; an explicit ref may point at
// whatever file the user put there.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
}

// Locator turns FileRefs into absolute paths under one fonts directory.
type Locator struct {
	root string
}

// NewLocator creates a locator over the given fonts directory.
func NewLocator(root string) *Locator {
	return &Locator{root: root}
}

// Root returns the fonts directory the locator searches.
func (l *Locator) Root() string {
	return l.root
}

// Resolve checks the ref's nominal location first, then falls back to a
// depth-first search of the whole tree for a file with the same base
// name, so selections survive files being reorganized into
// subdirectories. Base names are compared case-insensitively.
func (l *Locator) Resolve(ref FileRef) (ResolvedPath, error) {
	if ref == "" {
		return "", fmt.Errorf("resolving empty ref: %w", ErrNotFound)
	}

	direct := filepath.Join(l.root, ref.native())
	if info, err := os.Stat(direct); err == nil && info.Mode().IsRegular() {
		return ResolvedPath(direct), nil
	}

	if found, ok := l.searchByBase(ref.Base()); ok {
		return ResolvedPath(found), nil
	}
	return "", fmt.Errorf("resolving %q under %s: %w", string(ref), l.root, ErrNotFound)
}

// List enumerates the font files under the root as refs relative to it,
// in the same depth-first order Resolve searches in.
func (l *Locator) List() []FileRef {
	var refs []FileRef
	l.walk(func(dir string, entry os.DirEntry) bool {
		if !isFontFile(entry.Name()) {
			return false
		}
		if rel, err := filepath.Rel(l.root, filepath.Join(dir, entry.Name())); err == nil {
			refs = append(refs, FileRef(filepath.ToSlash(rel)))
		}
		return false
	})
	return refs
}

func (l *Locator) searchByBase(base string) (string, bool) {
	var found string
	l.walk(func(dir string, entry os.DirEntry) bool {
		if strings.EqualFold(entry.Name(), base) {
			found = filepath.Join(dir, entry.Name())
			return true
		}
		return false
	})
	return found, found != ""
}

// walk visits the tree with an explicit stack, handing each directory's
// files to visit before descending into its subdirectories. visit
// returns true to stop the walk. Unreadable directories are skipped
// rather than failing the traversal.
func (l *Locator) walk(visit func(dir string, entry os.DirEntry) bool) {
	stack := []string{l.root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		var subdirs []string
		for _, entry := range entries {
			if entry.IsDir() {
				subdirs = append(subdirs, filepath.Join(dir, entry.Name()))
				continue
			}
			if visit(dir, entry) {
				return
			}
		}

		// Push in reverse so the first subdirectory is searched next.
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
}

func isFontFile(name string) bool {
	return fontExtensions[strings.ToLower(filepath.Ext(name))]
}
