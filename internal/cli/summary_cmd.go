package cli

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *App, opts *rootOptions) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:               "summary <domain>",
		Short:             "Summarize one domain: counts, level, insight and groups",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domainArg(args)
			if err != nil {
				return err
			}
			snap, err := a.loadSnapshot(cmd.Context(), opts)
			if err != nil {
				return err
			}

			req := app.NewSummaryRequest(kind, snap)
			req.Now = opts.now.Value()
			if by != "" {
				req.GroupBy = by
			}

			resp, err := a.Dashboard.Summarize(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "Group by "+dimensionNames()+" (default temporal)")
	return cmd
}
