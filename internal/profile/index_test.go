package profile

import (
	"errors"
	"testing"
	"testing/fstest"
)

func profilesFS() fstest.MapFS {
	return fstest.MapFS{
		"default/standards/global/style.md":  &fstest.MapFile{Data: []byte("Use tabs.\n")},
		"default/standards/global/naming.md": &fstest.MapFile{Data: []byte("Short names.\n")},
		"default/workflows/plan.md":          &fstest.MapFile{Data: []byte("Plan.\n")},
		"default/agents/implementer.md":      &fstest.MapFile{Data: []byte("# Implementer\n")},
		"rails/standards/global/style.md":    &fstest.MapFile{Data: []byte("Use spaces.\n")},
		"rails/standards/rails/models.md":    &fstest.MapFile{Data: []byte("Thin models.\n")},
	}
}

func TestNewIndex(t *testing.T) {
	t.Run("known_profile", func(t *testing.T) {
		ix, err := NewIndex(profilesFS(), "rails")
		if err != nil {
			t.Fatalf("NewIndex error: %v", err)
		}
		if ix.Name() != "rails" {
			t.Errorf("Name() = %q, want rails", ix.Name())
		}
	})

	t.Run("empty_name_falls_back_to_default", func(t *testing.T) {
		ix, err := NewIndex(profilesFS(), "")
		if err != nil {
			t.Fatalf("NewIndex error: %v", err)
		}
		if ix.Name() != "default" {
			t.Errorf("Name() = %q, want default", ix.Name())
		}
	})

	t.Run("unknown_profile_is_fatal", func(t *testing.T) {
		_, err := NewIndex(profilesFS(), "django")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("error = %v, want ErrProfileNotFound", err)
		}
	})
}

func TestListFiles(t *testing.T) {
	t.Run("merges_profile_with_default", func(t *testing.T) {
		ix, err := NewIndex(profilesFS(), "rails")
		if err != nil {
			t.Fatalf("NewIndex error: %v", err)
		}

		files, err := ix.ListFiles(CategoryStandards)
		if err != nil {
			t.Fatalf("ListFiles error: %v", err)
		}

		want := []string{
			"standards/global/naming.md",
			"standards/global/style.md",
			"standards/rails/models.md",
		}
		if len(files) != len(want) {
			t.Fatalf("ListFiles = %d files, want %d", len(files), len(want))
		}
		for i, f := range files {
			if f.Path != want[i] {
				t.Errorf("files[%d] = %q, want %q (sorted)", i, f.Path, want[i])
			}
			if f.Category != CategoryStandards {
				t.Errorf("files[%d] category = %v", i, f.Category)
			}
		}
	})

	t.Run("idempotent_across_calls", func(t *testing.T) {
		ix, err := NewIndex(profilesFS(), "rails")
		if err != nil {
			t.Fatalf("NewIndex error: %v", err)
		}
		first, err := ix.ListFiles(CategoryUnknown)
		if err != nil {
			t.Fatalf("ListFiles error: %v", err)
		}
		second, err := ix.ListFiles(CategoryUnknown)
		if err != nil {
			t.Fatalf("ListFiles error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("repeated calls differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("entry %d differs across calls", i)
			}
		}
	})

	t.Run("empty_category_is_not_an_error", func(t *testing.T) {
		ix, err := NewIndex(profilesFS(), "rails")
		if err != nil {
			t.Fatalf("NewIndex error: %v", err)
		}
		files, err := ix.ListFiles(CategoryRouting)
		if err != nil {
			t.Fatalf("ListFiles error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("ListFiles = %v, want none", files)
		}
	})
}

func TestResolve(t *testing.T) {
	ix, err := NewIndex(profilesFS(), "rails")
	if err != nil {
		t.Fatalf("NewIndex error: %v", err)
	}

	t.Run("profile_copy_wins", func(t *testing.T) {
		resolved, err := ix.Resolve("standards/global/style.md")
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if resolved != "rails/standards/global/style.md" {
			t.Errorf("Resolve = %q, want the rails copy", resolved)
		}
	})

	t.Run("falls_back_to_default", func(t *testing.T) {
		resolved, err := ix.Resolve("workflows/plan.md")
		if err != nil {
			t.Fatalf("Resolve error: %v", err)
		}
		if resolved != "default/workflows/plan.md" {
			t.Errorf("Resolve = %q, want the default copy", resolved)
		}
	})

	t.Run("missing_everywhere", func(t *testing.T) {
		_, err := ix.Resolve("workflows/missing.md")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("error = %v, want ErrTemplateNotFound", err)
		}
	})
}

func TestRead(t *testing.T) {
	ix, err := NewIndex(profilesFS(), "rails")
	if err != nil {
		t.Fatalf("NewIndex error: %v", err)
	}

	data, resolved, err := ix.Read("standards/global/style.md")
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if string(data) != "Use spaces.\n" {
		t.Errorf("content = %q, want the rails override", data)
	}
	if resolved != "rails/standards/global/style.md" {
		t.Errorf("resolved = %q", resolved)
	}
}

func TestGlob(t *testing.T) {
	ix, err := NewIndex(profilesFS(), "rails")
	if err != nil {
		t.Fatalf("NewIndex error: %v", err)
	}

	t.Run("star_spans_separators", func(t *testing.T) {
		matches, err := ix.Glob("standards/*")
		if err != nil {
			t.Fatalf("Glob error: %v", err)
		}
		want := []string{
			"standards/global/naming.md",
			"standards/global/style.md",
			"standards/rails/models.md",
		}
		if len(matches) != len(want) {
			t.Fatalf("Glob = %v, want %v", matches, want)
		}
		for i := range want {
			if matches[i] != want[i] {
				t.Errorf("matches[%d] = %q, want %q", i, matches[i], want[i])
			}
		}
	})

	t.Run("narrower_pattern", func(t *testing.T) {
		matches, err := ix.Glob("standards/global/*")
		if err != nil {
			t.Fatalf("Glob error: %v", err)
		}
		if len(matches) != 2 {
			t.Errorf("Glob = %v, want 2 global standards", matches)
		}
	})

	t.Run("no_matches", func(t *testing.T) {
		matches, err := ix.Glob("standards/python/*")
		if err != nil {
			t.Fatalf("Glob error: %v", err)
		}
		if len(matches) != 0 {
			t.Errorf("Glob = %v, want none", matches)
		}
	})
}
