package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentos-dev/agentos/internal/defs"
)

func seedTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("content\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestBackupInstalledTrees(t *testing.T) {
	t.Run("moves_owned_trees_aside", func(t *testing.T) {
		root := t.TempDir()
		seedTree(t, root,
			"agent-os/standards/style.md",
			".claude/commands/agent-os/plan.md",
			"src/main.go",
		)

		backupDir, err := BackupInstalledTrees(root)
		if err != nil {
			t.Fatalf("BackupInstalledTrees error: %v", err)
		}
		if backupDir == "" {
			t.Fatal("expected a backup directory")
		}
		if !strings.HasPrefix(filepath.Base(backupDir), defs.BackupDirPrefix) {
			t.Errorf("backup directory name = %s", filepath.Base(backupDir))
		}

		if _, err := os.Stat(filepath.Join(root, "agent-os")); !os.IsNotExist(err) {
			t.Error("agent-os tree still present after backup")
		}
		if _, err := os.Stat(filepath.Join(backupDir, "agent-os/standards/style.md")); err != nil {
			t.Errorf("backed-up file missing: %v", err)
		}
		if _, err := os.Stat(filepath.Join(backupDir, ".claude/commands/agent-os/plan.md")); err != nil {
			t.Errorf("backed-up claude tree missing: %v", err)
		}
		// Project files outside the owned trees stay put.
		if _, err := os.Stat(filepath.Join(root, "src/main.go")); err != nil {
			t.Errorf("unrelated project file disturbed: %v", err)
		}
	})

	t.Run("nothing_installed", func(t *testing.T) {
		root := t.TempDir()
		seedTree(t, root, "src/main.go")

		backupDir, err := BackupInstalledTrees(root)
		if err != nil {
			t.Fatalf("BackupInstalledTrees error: %v", err)
		}
		if backupDir != "" {
			t.Errorf("backupDir = %q, want empty when nothing was installed", backupDir)
		}

		entries, err := os.ReadDir(root)
		if err != nil {
			t.Fatal(err)
		}
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), defs.BackupDirPrefix) {
				t.Errorf("stray backup directory %s", entry.Name())
			}
		}
	})
}

func TestPruneOldBackups(t *testing.T) {
	root := t.TempDir()
	names := []string{
		defs.BackupDirPrefix + "20250101_000000",
		defs.BackupDirPrefix + "20250201_000000",
		defs.BackupDirPrefix + "20250301_000000",
		defs.BackupDirPrefix + "20250401_000000",
		defs.BackupDirPrefix + "20250501_000000",
	}
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	pruneOldBackups(root, 3)

	var remaining []string
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), defs.BackupDirPrefix) {
			remaining = append(remaining, entry.Name())
		}
	}
	if len(remaining) != 3 {
		t.Fatalf("remaining = %v, want 3 newest", remaining)
	}
	for _, name := range remaining {
		if name == names[0] || name == names[1] {
			t.Errorf("oldest backup %s survived pruning", name)
		}
	}
}
