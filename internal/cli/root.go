package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/logger"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/memstore"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/xlsxchart"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/xlsxexport"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ui/tui"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug     bool
		workspace string
	)

	cmd := &cobra.Command{
		Use:          "shiplog",
		Short:        "shiplog records shipment transit times and reports averages by issuer",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  ws.root,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			log := logger.L()
			log.Info("app.start", "workspace", ws.root, "found", ws.found)

			deps := newTUIDeps(ws, debug)
			if err := logger.IsReady(); err == nil {
				deps.LogPath = logger.Path()
			}
			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .shiplog/logs/shiplog.log")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	cmd.AddCommand(daysCmd())
	return cmd
}

// newTUIDeps wires one in-memory store into every use case the UI drives.
func newTUIDeps(ws *workspaceCtx, debug bool) tui.Deps {
	log := logger.L()
	opt := usecase.WithLogger(log)
	store := memstore.New()

	return tui.Deps{
		Records: usecase.NewRecords(store, opt),
		Queries: usecase.NewQueries(store, opt),
		Export:  usecase.NewExportRecords(store, xlsxexport.New(ws.cfg.Export), opt),
		Chart:   usecase.NewChartAverages(store, opt),
		ChartFile: func(path string) tui.ChartFileRenderer {
			return xlsxchart.NewWriter(path)
		},
		Config:        ws.cfg,
		WorkspaceRoot: ws.root,
		Logger:        log,
		Debug:         debug,
	}
}
