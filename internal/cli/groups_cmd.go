package cli

import (
	"fmt"

	"github.com/alexanderramin/lifedash/internal/app"
	"github.com/alexanderramin/lifedash/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newGroupsCmd(a *App, opts *rootOptions) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:               "groups <domain>",
		Short:             "Partition a domain's active records by one dimension",
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
			req.GroupBy = by

			resp, err := a.Dashboard.Summarize(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatGroups(resp.Groups, resp.Summary.GeneratedAt))
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "Dimension: "+dimensionNames())
	_ = cmd.MarkFlagRequired("by")
	return cmd
}
