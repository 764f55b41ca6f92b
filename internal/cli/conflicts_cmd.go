package cli

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/cli/formatter"
	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/spf13/cobra"
)

func newConflictsCmd(a *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "Report structural conflicts among priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.loadSnapshot(cmd.Context(), opts)
			if err != nil {
				return err
			}

			req := app.NewSummaryRequest(domain.KindPriority, snap)
			req.Now = opts.now.Value()

			resp, err := a.Dashboard.Summarize(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatConflicts(resp.Conflicts))
			return nil
		},
	}
}
