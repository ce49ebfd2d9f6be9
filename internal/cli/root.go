package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "quotedesk" command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quotedesk",
		Short:         "Quote wizard and reseller dashboard backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newRenderCmd(),
		newPayoutsCmd(),
	)

	return root
}
