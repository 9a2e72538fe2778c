package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ui/render"
)

// daysCmd computes transit days for one issue/shipment pair using the same
// validation the form applies.
func daysCmd() *cobra.Command {
	var (
		issuer  string
		carrier string
		asTable bool
	)

	cmd := &cobra.Command{
		Use:   "days ISSUE_DATE SHIPMENT_DATE",
		Short: "Print the transit days between two DD/MM/YYYY dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := domain.BuildRecord(domain.RecordInput{
				Issuer:       issuer,
				Carrier:      carrier,
				IssueDate:    args[0],
				ShipmentDate: args[1],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asTable {
				fmt.Fprintln(out, render.Records([]domain.ShipmentRecord{rec}))
				return nil
			}
			fmt.Fprintln(out, rec.TransitDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&issuer, "issuer", "", "Issuer shown with --table")
	cmd.Flags().StringVar(&carrier, "carrier", "", "Carrier shown with --table")
	cmd.Flags().BoolVar(&asTable, "table", false, "Print the full record as a table")
	return cmd
}
