package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quotedesk/backend/internal/app"
	"quotedesk/backend/internal/app/config"
	"quotedesk/backend/internal/domain/commission"
)

func newPayoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "Commission payout operations",
	}
	cmd.AddCommand(newPayoutsGenerateCmd())
	return cmd
}

func newPayoutsGenerateCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate commission payouts for a billing period",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad()
			log, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Sync()

			rc, err := app.NewRemote(cfg, log)
			if err != nil {
				return err
			}
			svc := commission.New(rc, log.Named("commission"))
			res, err := svc.Generate(cmd.Context(), period)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d generated)\n", res.Message, res.GeneratedCount)
			for _, p := range svc.Cached() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-24s %-16s %10.2f  %s\n", p.AgentName, p.Period, p.CommissionAmount, p.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "", `Billing period, e.g. "March 2025"`)
	cmd.MarkFlagRequired("period")

	return cmd
}
