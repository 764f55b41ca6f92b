package cli

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize every domain at once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd.Context(), opts)
			if err != nil {
				return err
			}

			resp, err := a.Dashboard.Dashboard(cmd.Context(), app.DashboardRequest{
				Now:      opts.now.Value(),
				Snapshot: snap,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
			return nil
		},
	}
}
