package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lifedash/internal/analyzer"
	"github.com/alexanderramin/lifedash/internal/domain"
	"github.com/alexanderramin/lifedash/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and defaults shared by every command.
type App struct {
	Dashboard service.DashboardService
	Snapshots service.SnapshotService

	// DefaultSnapshot is used when --file is not given.
	DefaultSnapshot string
	// Location interprets date-only --now values.
	Location *time.Location
}

type rootOptions struct {
	file string
	now  timeFlag
}

// NewRootCmd creates the top-level "lifedash" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	opts := &rootOptions{now: timeFlag{loc: app.location()}}

	root := &cobra.Command{
		Use:   "lifedash",
		Short: "Derived state and insights for commitments, tasks, habits and more",
		Long: `lifedash reads a snapshot of life-dashboard records (YAML or JSON) and
reports counts, levels, insights, groupings and priority conflicts.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Snapshot file (YAML or JSON)")
	root.PersistentFlags().Var(&opts.now, "now", "Evaluate at this instant (RFC3339 or YYYY-MM-DD), read in the configured timezone")

	root.AddCommand(
		newSummaryCmd(app, opts),
		newGroupsCmd(app, opts),
		newConflictsCmd(app, opts),
		newDashboardCmd(app, opts),
	)
	return root
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

// loadSnapshot reads the snapshot named by --file or the configured default.
func (a *App) loadSnapshot(ctx context.Context, opts *rootOptions) (domain.Snapshot, error) {
	path := opts.file
	if path == "" {
		path = a.DefaultSnapshot
	}
	if path == "" {
		return domain.Snapshot{}, errors.New("no snapshot file: pass --file or set LIFEDASH_SNAPSHOT")
	}
	res, err := a.Snapshots.Load(ctx, path)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return res.Snapshot, nil
}

func domainArg(args []string) (domain.Kind, error) {
	kind, ok := domain.ParseKind(args[0])
	if !ok {
		return "", fmt.Errorf("unknown domain %q (want one of: %s)", args[0], kindNames())
	}
	return kind, nil
}

func kindNames() string {
	names := make([]string, len(domain.Kinds))
	for i, k := range domain.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func dimensionNames() string {
	names := make([]string, len(analyzer.Dimensions))
	for i, d := range analyzer.Dimensions {
		names[i] = string(d)
	}
	return strings.Join(names, "|")
}

func completeKinds(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, len(domain.Kinds))
	for i, k := range domain.Kinds {
		names[i] = string(k)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
