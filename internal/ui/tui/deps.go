package tui

import (
	"log/slog"
	"time"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/usecase"
)

type Deps struct {
	Records *usecase.Records
	Queries *usecase.Queries
	Export  *usecase.ExportRecords
	Chart   *usecase.ChartAverages

	// ChartFile builds the renderer used by "save chart" for a destination.
	ChartFile func(path string) ChartFileRenderer

	Config        domain.Config
	WorkspaceRoot string

	// Now stamps {{date}}/{{time}} in suggested file names. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
	// LogPath is shown in place of "see logs" hints. Empty when logging is off.
	LogPath string
	// Debug appends the raw error chain to error modals.
	Debug bool
}

// ChartFileRenderer is a chart renderer that reports where it wrote.
type ChartFileRenderer interface {
	ports.ChartRenderer
	Written() string
}
