package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/buildinfo"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
