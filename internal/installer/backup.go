package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/agentos-dev/agentos/internal/defs"
)

// backupTimestampFormat names backup directories as agent-os-backup-YYYYMMDD_HHMMSS.
const backupTimestampFormat = "20060102_150405"

// keepBackups is how many re-install backups are retained per project.
const keepBackups = 3

// installedTrees lists the root directories this tool owns inside a project.
// A re-install moves exactly these aside and nothing else.
var installedTrees = []string{
	defs.AgentOSDir,
	defs.ClaudeCommandsDest,
	defs.ClaudeAgentsDest,
	defs.ClaudeSkillsDest,
}

// BackupInstalledTrees moves the previously-installed trees into a
// timestamped backup directory under the project root, then prunes old
// backups. It returns the backup directory path, or "" when there was
// nothing to back up.
func BackupInstalledTrees(projectRoot string) (string, error) {
	timestamp := time.Now().Format(backupTimestampFormat)
	backupDir := filepath.Join(projectRoot, defs.BackupDirPrefix+timestamp)

	moved := 0
	for _, tree := range installedTrees {
		src := filepath.Join(projectRoot, filepath.FromSlash(tree))
		info, err := os.Stat(src)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("installer: stat %q: %w", tree, err)
		}
		if !info.IsDir() {
			continue
		}

		dst := filepath.Join(backupDir, filepath.FromSlash(tree))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return "", fmt.Errorf("installer: create backup directory: %w", err)
		}
		if err := os.Rename(src, dst); err != nil {
			return "", fmt.Errorf("installer: move %q to backup: %w", tree, err)
		}
		moved++
	}

	if moved == 0 {
		// Nothing was installed; drop the empty backup directory if the
		// MkdirAll above never ran.
		_ = os.Remove(backupDir)
		return "", nil
	}

	pruneOldBackups(projectRoot, keepBackups)
	return backupDir, nil
}

// pruneOldBackups removes the oldest backup directories beyond keepCount.
// Errors are ignored: pruning is best-effort housekeeping.
func pruneOldBackups(projectRoot string, keepCount int) {
	entries, err := os.ReadDir(projectRoot)
	if err != nil {
		return
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), defs.BackupDirPrefix) {
			backups = append(backups, entry.Name())
		}
	}
	if len(backups) <= keepCount {
		return
	}

	// Timestamped names sort chronologically; oldest first.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-keepCount] {
		_ = os.RemoveAll(filepath.Join(projectRoot, name))
	}
}
