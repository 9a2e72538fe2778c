package ports

import "github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"

// WorkspaceLocator finds a shiplog workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// ConfigLoader reads the workspace configuration, applying defaults.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
