package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "svgmacro"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "svgmacro.log"

	// EnvConfigDir overrides the config directory
	EnvConfigDir = "SVGMACRO_CONFIG_DIR"

	// EnvStateDir overrides the state directory
	EnvStateDir = "SVGMACRO_STATE_DIR"
)

// ProjectConfigNames are the project config file names, in lookup order
var ProjectConfigNames = []string{".svgmacro.toml", "svgmacro.toml"}

// Paths provides the locations svgmacro reads and writes outside of its inputs
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	LogFilePath() string
	ProjectConfigPath(dir string) string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment at call time
func New() Paths {
	p := &paths{}

	switch {
	case os.Getenv(EnvConfigDir) != "":
		p.configDir = expandHome(os.Getenv(EnvConfigDir))
	case os.Getenv("XDG_CONFIG_HOME") != "":
		p.configDir = filepath.Join(os.Getenv("XDG_CONFIG_HOME"), AppDirName)
	default:
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	switch {
	case os.Getenv(EnvStateDir) != "":
		p.stateDir = expandHome(os.Getenv(EnvStateDir))
	case os.Getenv("XDG_STATE_HOME") != "":
		p.stateDir = filepath.Join(os.Getenv("XDG_STATE_HOME"), AppDirName)
	default:
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p
}

func (p *paths) ConfigDir() string {
	return p.configDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ProjectConfigPath returns the first project config file present in dir,
// or "" when there is none
func (p *paths) ProjectConfigPath(dir string) string {
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
