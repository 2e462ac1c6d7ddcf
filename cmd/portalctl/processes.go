package main

import (
	"context"
	"errors"
	"fmt"
	"portal_electro/internal/adapter/persistence/repository"
	"portal_electro/internal/config"
	"portal_electro/internal/domain/entities"
	"portal_electro/internal/infrastructure/cache"
	"portal_electro/internal/infrastructure/logger"
	"portal_electro/internal/infrastructure/portalapi"
	"portal_electro/internal/session"
	"portal_electro/internal/usecase"
	"portal_electro/internal/usecase/interfaces"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// client bundles what the process commands need.
type client struct {
	ctx    context.Context
	cfg    *config.Config
	repos  usecase.ProcessRepositories
	opts   usecase.LifecycleOptions
	logger *zap.Logger
}

func connect(cmd *cobra.Command, g *globalOptions) (*client, error) {
	creds := session.Credentials{Token: g.token, UserID: g.userID}
	if !creds.Valid() {
		return nil, errors.New("a portal token is required (--token or PORTAL_TOKEN)")
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	zl, err := logger.New(cfg.Logger.Level, "console", "portalctl")
	if err != nil {
		return nil, err
	}

	api := portalapi.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, zl)
	return &client{
		ctx:    session.WithCredentials(cmd.Context(), creds),
		cfg:    cfg,
		repos:  repository.NewProcessRepositories(api),
		opts:   usecase.LifecycleOptions{Encoding: cfg.Process.Encoding(), HistoryNote: cfg.Process.HistoryNote},
		logger: zl,
	}, nil
}

// useEditLock wires the redis edit lock shared with the API so that a stage change from
// here and an edit from the portal never interleave on the same process. The returned func
// closes the redis connection.
func (c *client) useEditLock() (func(), error) {
	if !c.cfg.Redis.Enabled() {
		return func() {}, nil
	}
	rds, err := cache.ConnectRedis(c.ctx, c.cfg.Redis)
	if err != nil {
		return nil, err
	}
	c.repos.EditLocker = repository.NewRedisEditLocker(rds.Locker, c.cfg.Redis.LockTTL, c.logger)
	return func() { _ = rds.Close() }, nil
}

func newProcessesCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "processes",
		Aliases: []string{"process", "ps"},
		Short:   "Inspect and move installation processes",
	}
	cmd.AddCommand(newProcessesListCmd(g))
	cmd.AddCommand(newProcessesShowCmd(g))
	cmd.AddCommand(newProcessesStageCmd(g))
	return cmd
}

func newProcessesListCmd(g *globalOptions) *cobra.Command {
	var (
		status  string
		quoteID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processes with their stage and the per-stage counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(cmd, g)
			if err != nil {
				return err
			}
			uc := usecase.NewProcessListUseCase(c.repos, nil, nil, c.opts, c.logger)
			board, err := uc.List(c.ctx, entities.ProcessFilter{Status: status, QuoteID: quoteID})
			if err != nil {
				return errors.New(usecase.UserMessage(err))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTAGE\tSTATUS\tQUOTE\tASSIGNED")
			for _, e := range board.Entries {
				fmt.Fprintf(w, "%d\t%s\t%d %s\t%s\t%d\t%d\n", e.Process.ID, e.Process.Name, e.Stage, e.Stage, e.Process.Status, e.Process.QuoteID, e.Process.AssignedTo)
			}
			fmt.Fprintln(w)
			for _, sc := range board.Counts() {
				fmt.Fprintf(w, "%d %s\t%d\n", sc.Stage, sc.Name, sc.Count)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by raw status")
	cmd.Flags().Int64Var(&quoteID, "quote", 0, "filter by quote id")
	return cmd
}

func newProcessesShowCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a process with its materials, notes and alerts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := connect(cmd, g)
			if err != nil {
				return err
			}
			d, err := usecase.NewProcessDetailLoader(c.repos, c.logger).LoadByID(c.ctx, id)
			if err != nil {
				return errors.New(usecase.UserMessage(err))
			}
			printDetail(cmd, d)
			return nil
		},
	}
}

func newProcessesStageCmd(g *globalOptions) *cobra.Command {
	var (
		name     string
		assignee int64
	)

	cmd := &cobra.Command{
		Use:   "stage <id> <stage>",
		Short: "Move a process to another stage and record it in the history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			stage, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stage %q", args[1])
			}
			c, err := connect(cmd, g)
			if err != nil {
				return err
			}
			closeLock, err := c.useEditLock()
			if err != nil {
				return err
			}
			defer closeLock()

			d, err := usecase.NewProcessDetailLoader(c.repos, c.logger).LoadByID(c.ctx, id)
			if err != nil {
				return errors.New(usecase.UserMessage(err))
			}
			lc := usecase.NewProcessLifecycle(d, c.repos, c.opts, c.logger)

			edit := usecase.ProcessEdit{Name: d.Process.Name, Stage: entities.Stage(stage)}
			if name != "" {
				edit.Name = name
			}
			if cmd.Flags().Changed("assignee") {
				edit.AssignedTo = &assignee
			}

			d, err = lc.CommitEdit(c.ctx, edit)
			var auditErr *usecase.AuditWriteError
			switch {
			case errors.As(err, &auditErr):
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", auditErr.UserMessage())
			case errors.Is(err, interfaces.ErrProcessLocked):
				return fmt.Errorf("process %d is being edited elsewhere, try again", id)
			case err != nil:
				return errors.New(usecase.UserMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "process %d is now at stage %d %s (status %q)\n", d.Process.ID, d.CurrentStage(), d.CurrentStage(), d.Process.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rename the process")
	cmd.Flags().Int64Var(&assignee, "assignee", 0, "reassign the process")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid process id %q", raw)
	}
	return id, nil
}

func printDetail(cmd *cobra.Command, d entities.ProcessDetail) {
	out := cmd.OutOrStdout()
	p := d.Process
	fmt.Fprintf(out, "Process %d: %s\n", p.ID, p.Name)
	fmt.Fprintf(out, "Stage:    %d %s (status %q)\n", d.CurrentStage(), d.CurrentStage(), p.Status)
	fmt.Fprintf(out, "Quote:    %d\nAssigned: %d\n", p.QuoteID, p.AssignedTo)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "\nMATERIALS (%d)\tQTY\tUNIT\tTOTAL\n", len(d.Materials))
	for _, m := range d.Materials {
		unit := ""
		if m.Source != nil {
			unit = m.Source.UnitPrice()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", m.Label(), m.Quantity, unit, m.LineTotal().StringFixed(2))
	}
	fmt.Fprintf(w, "\t\t\t%s\n", d.MaterialsTotal().StringFixed(2))
	_ = w.Flush()

	fmt.Fprintf(out, "\nNOTES (%d)\n", len(d.Notes))
	for _, n := range d.Notes {
		fmt.Fprintf(out, "- %s\n", n.Note)
	}
	fmt.Fprintf(out, "\nALERTS (%d open)\n", d.OpenAlerts())
	for _, a := range d.Alerts {
		fmt.Fprintf(out, "- [%s] %s: %s\n", a.Status, a.AlertType, a.Message)
	}
	if d.ServiceReport != nil {
		fmt.Fprintf(out, "\nService report %d on %s\n", d.ServiceReport.ID, entities.DatePart(d.ServiceReport.ServiceDate))
	}
}
