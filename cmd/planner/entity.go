package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/resource"
)

// entity describes one trip-owned entity type to the shared list and remove
// commands.
type entity[T domain.Record[T], P domain.Patch[T]] struct {
	use     string
	short   string
	tripID  string // --trip, set on the parent command
	manager func() *resource.Manager[T, P]
	header  []string
	row     func(T) []string
}

// parent returns the entity's command with its --trip flag, list and rm.
func (e *entity[T, P]) parent() *cobra.Command {
	cmd := &cobra.Command{Use: e.use, Short: e.short}
	cmd.PersistentFlags().StringVar(&e.tripID, "trip", "", "trip id (required)")
	_ = cmd.MarkPersistentFlagRequired("trip")
	cmd.AddCommand(e.listCmd(), e.removeCmd())
	return cmd
}

// open builds the manager and loads the trip's first page.
func (e *entity[T, P]) open() (*resource.Manager[T, P], error) {
	trip, err := uuid.Parse(e.tripID)
	if err != nil {
		return nil, fmt.Errorf("invalid --trip %q: %w", e.tripID, err)
	}
	m := e.manager()
	if err := m.SetParent(app.ctx, trip); err != nil {
		return nil, err
	}
	return m, nil
}

func (e *entity[T, P]) listCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the trip's " + e.use,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.open()
			if err != nil {
				return err
			}
			if page > 1 {
				if err := m.GoTo(app.ctx, page); err != nil {
					return err
				}
			}
			return e.print(m)
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page to show, clamped to the available pages")
	return cmd
}

func (e *entity[T, P]) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove one of the trip's " + e.use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			m, err := e.open()
			if err != nil {
				return err
			}
			return m.Remove(app.ctx, id)
		},
	}
}

// print writes the manager's current page as a table, or as JSON with --json.
func (e *entity[T, P]) print(m *resource.Manager[T, P]) error {
	items := m.Items()
	if ok, err := app.printJSON(items); ok {
		return err
	}

	tw := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(e.header, "\t"))
	for _, it := range items {
		fmt.Fprintln(tw, strings.Join(e.row(it), "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	p := m.Pagination()
	if p.Size > 0 {
		fmt.Fprintf(app.out, "page %d of %d (%d total)\n", p.Current, max(p.TotalPages(), 1), p.Total)
	}
	return nil
}

// after runs fn and then prints the refreshed collection.
func (e *entity[T, P]) after(fn func(m *resource.Manager[T, P]) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		m, err := e.open()
		if err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
		return e.print(m)
	}
}

// onItem builds the RunE of a command taking an entity ID. The manager is
// moved to the page holding the ID before fn runs, then the page is printed.
func (e *entity[T, P]) onItem(fn func(cmd *cobra.Command, m *resource.Manager[T, P], id uuid.UUID) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}
		m, err := e.open()
		if err != nil {
			return err
		}
		if _, err := m.Seek(app.ctx, id); err != nil {
			return err
		}
		if err := fn(cmd, m, id); err != nil {
			return err
		}
		return e.print(m)
	}
}

// ---- flag helpers ----------------------------------------------------------

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// optDate parses an optional date flag; empty yields nil.
func optDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func fmtDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format(time.DateOnly)
}

// changed returns a pointer to v when the named flag was set on cmd.
func changed[V any](cmd *cobra.Command, name string, v V) *V {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
