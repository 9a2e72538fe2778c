package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/fsworkspace"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/logger"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/usecase"
)

func initCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create shiplog.yaml and the export/log folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer(), usecase.WithLogger(logger.L()))
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing shiplog.yaml")
	return cmd
}
