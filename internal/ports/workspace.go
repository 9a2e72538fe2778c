package ports

import "github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
