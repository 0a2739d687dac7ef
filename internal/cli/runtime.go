package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentos-dev/agentos/internal/defs"
)

// runtime carries every ambient input the core packages need. Only this
// constructor reads the environment and the working directory; everything
// downstream receives the values explicitly.
type runtime struct {
	// home is the Agent OS base installation holding profiles and the
	// base config.
	home string
	// projectRoot is the target project tree.
	projectRoot string
	// profiles is the filesystem rooted at home/profiles, one directory
	// per profile.
	profiles fs.FS
}

// newRuntime resolves the Agent OS home (AGENT_OS_HOME, falling back to
// ~/agent-os) and the current project root.
func newRuntime() (*runtime, error) {
	home := os.Getenv("AGENT_OS_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		home = filepath.Join(userHome, defs.AgentOSDir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	return &runtime{
		home:        home,
		projectRoot: cwd,
		profiles:    os.DirFS(filepath.Join(home, defs.ProfilesDir)),
	}, nil
}

// baseConfigPath returns the base configuration file path in the home.
func (rt *runtime) baseConfigPath() string {
	return filepath.Join(rt.home, defs.BaseConfigYML)
}
