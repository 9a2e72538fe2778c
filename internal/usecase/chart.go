package usecase

import (
	"log/slog"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

// ChartAverages aggregates average transit days per issuer and hands the
// series to a renderer. The same use case drives the terminal chart and the
// workbook chart, so the renderer is chosen per call.
type ChartAverages struct {
	store ports.RecordStore
	log   *slog.Logger
}

func NewChartAverages(store ports.RecordStore, opts ...Option) *ChartAverages {
	o := buildOptions(opts)
	return &ChartAverages{store: store, log: o.log}
}

// Execute renders the chart, or fails with KindNoData when there is nothing
// to chart. The renderer is not called in that case.
func (uc *ChartAverages) Execute(renderer ports.ChartRenderer) ([]domain.IssuerAverage, error) {
	series := averagesByIssuer(uc.store.List())
	if len(series) == 0 {
		return nil, &domain.OpError{
			Op:   "chart.render",
			Kind: domain.KindNoData,
			Err:  domain.ErrNoData,
		}
	}

	if err := renderer.RenderChart(series); err != nil {
		uc.log.Error("chart.failed", "issuers", len(series), "err", err)
		return series, err
	}

	uc.log.Info("chart.rendered", "issuers", len(series))
	return series, nil
}
