package usecase

import (
	"log/slog"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// InitWorkspace scaffolds a shiplog.yaml workspace at a root directory.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...Option) *InitWorkspace {
	o := buildOptions(opts)
	return &InitWorkspace{initializer: initializer, log: o.log}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return err
	}
	uc.log.Info("workspace.initialized", "root", root, "force", force)
	return nil
}
