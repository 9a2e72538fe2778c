package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/config"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// Finder walks up from a directory to the nearest one holding a shiplog
// config file. That directory is where exports default to and logs live.
type Finder struct {
	Markers []string
}

func NewFinder() *Finder {
	return &Finder{Markers: config.FileNames}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspace.find"
	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for cur := filepath.Clean(abs); ; cur = filepath.Dir(cur) {
		if f.hasMarker(cur) {
			return cur, nil
		}
		if filepath.Dir(cur) == cur {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: abs, Err: domain.ErrNotFound}
		}
	}
}

func (f *Finder) hasMarker(dir string) bool {
	for _, name := range f.Markers {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
