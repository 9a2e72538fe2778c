package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/config"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/workspacefinder"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

type workspaceCtx struct {
	root  string
	cfg   domain.Config
	found bool
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	return resolveWorkspace(workspaceFlag, workspacefinder.NewFinder(), config.NewLoader())
}

// resolveWorkspace resolves the workspace and its configuration. Running
// outside a workspace is allowed: the current directory is used with the
// default config.
func resolveWorkspace(workspaceFlag string, locator ports.WorkspaceLocator, loader ports.ConfigLoader) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag, locator)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{root: root, cfg: domain.DefaultConfig()}

	cfg, err := loader.LoadConfig(root)
	switch {
	case err == nil:
		ws.cfg = cfg
		ws.found = true
	case domain.IsKind(err, domain.KindNotFound):
	default:
		return nil, err
	}
	return ws, nil
}

func resolveWorkspaceRoot(workspaceFlag string, locator ports.WorkspaceLocator) (string, error) {
	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if root, err := locator.FindRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}
