// Package profile indexes the template files available under a named
// profile, honoring fallback to the built-in default profile for files the
// named profile does not override.
package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/agentos-dev/agentos/internal/defs"
)

// Sentinel errors for profile operations.
var (
	// ErrProfileNotFound indicates the named profile has no directory.
	ErrProfileNotFound = errors.New("profile: profile not found")

	// ErrTemplateNotFound indicates a relative path that resolves in
	// neither the named profile nor the default profile.
	ErrTemplateNotFound = errors.New("profile: template not found")
)

// File is one indexed template source: its profile-relative path and the
// category derived from that path.
type File struct {
	Path     string
	Category Category
}

// Index enumerates and resolves template files for one named profile. The
// filesystem root holds one directory per profile; lookups try the named
// profile first and fall back to the default profile.
type Index struct {
	fsys    fs.FS
	profile string
}

// NewIndex creates an Index over the given profiles filesystem. It fails
// with ErrProfileNotFound before any planning happens when the named
// profile has no directory at all.
func NewIndex(fsys fs.FS, profile string) (*Index, error) {
	if profile == "" {
		profile = defs.DefaultProfile
	}

	info, err := fs.Stat(fsys, profile)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, profile)
	}
	return &Index{fsys: fsys, profile: profile}, nil
}

// Name returns the profile name this index serves.
func (ix *Index) Name() string {
	return ix.profile
}

// ListFiles enumerates the relative template paths available under the
// profile, merged with the default profile's files for paths the named
// profile does not override. The result is sorted lexicographically and is
// identical across repeated calls. Pass CategoryUnknown to list everything.
func (ix *Index) ListFiles(category Category) ([]File, error) {
	merged := map[string]Category{}

	// Default profile first, then the named profile so overrides win.
	roots := []string{defs.DefaultProfile, ix.profile}
	if ix.profile == defs.DefaultProfile {
		roots = roots[:1]
	}

	for _, root := range roots {
		err := fs.WalkDir(ix.fsys, root, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				// A profile may omit any subtree entirely.
				if errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				return err
			}
			if entry.IsDir() {
				return nil
			}
			rel := strings.TrimPrefix(p, root+"/")
			merged[rel] = Classify(rel)
			return nil
		})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("profile: walk %q: %w", root, err)
		}
	}

	files := make([]File, 0, len(merged))
	for rel, cat := range merged {
		if category != CategoryUnknown && cat != category {
			continue
		}
		files = append(files, File{Path: rel, Category: cat})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Resolve maps a profile-relative path to its concrete source path within
// the profiles filesystem: the named profile's copy when present, otherwise
// the default profile's.
func (ix *Index) Resolve(rel string) (string, error) {
	candidates := []string{ix.profile + "/" + rel}
	if ix.profile != defs.DefaultProfile {
		candidates = append(candidates, defs.DefaultProfile+"/"+rel)
	}

	for _, c := range candidates {
		if info, err := fs.Stat(ix.fsys, c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (profile %q)", ErrTemplateNotFound, rel, ix.profile)
}

// Read resolves and reads a template. It returns the raw content together
// with the concrete source path the content came from.
func (ix *Index) Read(rel string) ([]byte, string, error) {
	resolved, err := ix.Resolve(rel)
	if err != nil {
		return nil, "", err
	}
	data, err := fs.ReadFile(ix.fsys, resolved)
	if err != nil {
		return nil, "", fmt.Errorf("profile: read %q: %w", resolved, err)
	}
	return data, resolved, nil
}

// Glob returns the relative paths matching the given pattern, sorted
// lexicographically. Unlike path.Match, a "*" here matches any run of
// characters including separators, so "standards/*" covers the whole
// standards subtree.
func (ix *Index) Glob(pattern string) ([]string, error) {
	files, err := ix.ListFiles(CategoryUnknown)
	if err != nil {
		return nil, err
	}

	var matches []string
	for _, f := range files {
		if globMatch(pattern, f.Path) {
			matches = append(matches, f.Path)
		}
	}
	return matches, nil
}

// globMatch matches pattern against rel where "*" spans any characters.
func globMatch(pattern, rel string) bool {
	parts := strings.Split(pattern, "*")
	if len(parts) == 1 {
		return pattern == rel
	}

	if !strings.HasPrefix(rel, parts[0]) {
		return false
	}
	rel = rel[len(parts[0]):]

	for i := 1; i < len(parts)-1; i++ {
		idx := strings.Index(rel, parts[i])
		if idx < 0 {
			return false
		}
		rel = rel[idx+len(parts[i]):]
	}
	return strings.HasSuffix(rel, parts[len(parts)-1])
}
