package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"driveway_xpto/internal/adapter/persistence/repository"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/infrastructure/database"
	"driveway_xpto/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type reportFunc func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, from, to *time.Time) error

var reports = map[string]reportFunc{
	"big-clients": func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, _, _ *time.Time) error {
		rows, err := uc.BigClients(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "CLIENT ID\tNAME\tORDERS")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ClientID, r.ClientName, humanize.Comma(r.TotalOrders))
		}
		return nil
	},
	"difficult-clients":   clientRefReport(usecase.IReportUseCase.DifficultClients),
	"prospective-clients": clientRefReport(usecase.IReportUseCase.ProspectiveClients),
	"bad-clients":         clientRefReport(usecase.IReportUseCase.BadClients),
	"good-clients":        clientRefReport(usecase.IReportUseCase.GoodClients),
	"quotes": func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, from, to *time.Time) error {
		rows, err := uc.QuotesInWindow(ctx, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "QUOTE ID\tADDRESS\tINITIAL\tPROPOSED\tSTATUS\tCREATED")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", r.QuoteID, r.PropertyAddress, money(r.InitialPrice), money(r.ProposedPrice), r.Status, r.CreatedAt.Format(time.DateOnly))
		}
		return nil
	},
	"largest-driveway": func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, _, _ *time.Time) error {
		rows, err := uc.LargestDriveway(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ADDRESS\tSQUARE FEET")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\n", r.PropertyAddress, humanize.Comma(r.LargestSquareFeet))
		}
		return nil
	},
	"overdue-bills": func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, _, _ *time.Time) error {
		rows, err := uc.OverdueBills(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "BILL ID\tDUE\tSTATUS\tOVERDUE")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d days\n", r.BillID, r.DueDate.Format(time.DateOnly), r.Status, r.OverdueDays)
		}
		return nil
	},
	"revenue": func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, _, _ *time.Time) error {
		rev, err := uc.Revenue(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "TOTAL REVENUE")
		fmt.Fprintln(w, money(rev.TotalRevenue))
		return nil
	},
}

func clientRefReport(fetch func(usecase.IReportUseCase, context.Context) ([]entities.ClientRef, error)) reportFunc {
	return func(ctx context.Context, uc usecase.IReportUseCase, w *tabwriter.Writer, _, _ *time.Time) error {
		rows, err := fetch(uc, ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "CLIENT ID\tNAME")
		for _, r := range rows {
			fmt.Fprintf(w, "%d\t%s\n", r.ClientID, r.ClientName)
		}
		return nil
	}
}

func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func reportNames() []string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// renderReport writes the named report as an aligned table.
func renderReport(ctx context.Context, out io.Writer, uc usecase.IReportUseCase, name string, from, to *time.Time) error {
	fn, ok := reports[name]
	if !ok {
		return fmt.Errorf("unknown report %q (available: %s)", name, strings.Join(reportNames(), ", "))
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if err := fn(ctx, uc, w, from, to); err != nil {
		return err
	}
	return w.Flush()
}

func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", name, value)
	}
	return &t, nil
}

func newReportCmd(load configLoader) *cobra.Command {
	var fromFlag, toFlag string

	cmd := &cobra.Command{
		Use:       "report <name>",
		Short:     "Print a business report",
		Long:      "Prints one of the reports: " + strings.Join(reportNames(), ", ") + ".\nThe quotes report accepts --from and --to and defaults to the current month.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: reportNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateFlag("from", fromFlag)
			if err != nil {
				return err
			}
			to, err := parseDateFlag("to", toFlag)
			if err != nil {
				return err
			}

			cfg, err := load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			db, err := database.Connect(cmd.Context(), cfg.DB)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			uc := usecase.NewReportUseCase(repository.NewReportMySQLRepository(db.DB), cfg.Reports.OverdueGraceDays)
			return renderReport(cmd.Context(), cmd.OutOrStdout(), uc, args[0], from, to)
		},
	}
	cmd.Flags().StringVar(&fromFlag, "from", "", "window start, YYYY-MM-DD (quotes report)")
	cmd.Flags().StringVar(&toFlag, "to", "", "window end, exclusive, YYYY-MM-DD (quotes report)")
	return cmd
}
