package cli

import (
	"os"
	"path/filepath"
)

// Paths provides access to the app directory structure
type Paths struct {
	// AppName is the application name
	AppName string

	// HomeDir is the user's home directory
	HomeDir string
}

// NewPaths creates a new Paths instance for the given app
func NewPaths(appName string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{
		AppName: appName,
		HomeDir: home,
	}, nil
}

// AppDir returns the app directory (~/.<app>)
func (p *Paths) AppDir() string {
	return filepath.Join(p.HomeDir, "."+p.AppName)
}

// ConfigFile returns the config file path (~/.<app>/config.yaml)
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.AppDir(), DefaultConfigFile)
}

// ScriptDir returns the directory searched for bare script names (~/.<app>/scripts)
func (p *Paths) ScriptDir() string {
	return filepath.Join(p.AppDir(), "scripts")
}

// ScriptPath resolves a script argument. Paths containing a separator or an
// existing file are returned unchanged; bare names are looked up in ScriptDir.
func (p *Paths) ScriptPath(name string) string {
	if filepath.Base(name) != name {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(p.ScriptDir(), name)
}
