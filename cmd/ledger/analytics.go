package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/analytics"
	"github.com/pocket-ledger/backend/internal/application/usecase/insight"
	"github.com/pocket-ledger/backend/internal/application/usecase/theme"
)

func analyticsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show spending for a period",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			p, err := analytics.ParsePeriod(period)
			if err != nil {
				return err
			}

			out, err := a.uc.Snapshot.Execute(cmd.Context(), analytics.GetSnapshotInput{OwnerID: a.ownerID, Period: p})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Period: %s (since %s)\n", out.Period, out.WindowStart.Format("2006-01-02 15:04"))
			fmt.Fprintf(a.out, "Expenses: %d\n", len(out.Records))
			fmt.Fprintf(a.out, "Total: %s\n", out.Total.StringFixed(2))
			return nil
		}),
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(analytics.PeriodMonth), "window (today, week, month, year)")
	return cmd
}

func breakdownCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show spending per category",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			p, err := analytics.ParsePeriod(period)
			if err != nil {
				return err
			}

			out, err := a.uc.Breakdown.Execute(cmd.Context(), analytics.GetCategoryBreakdownInput{OwnerID: a.ownerID, Period: p})
			if err != nil {
				return err
			}
			if len(out.Categories) == 0 {
				fmt.Fprintf(a.out, "No expenses this %s.\n", out.Period)
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tAMOUNT\tSHARE")
			for _, c := range out.Categories {
				fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", c.Category, c.Amount.StringFixed(2), c.Percentage)
			}
			fmt.Fprintf(w, "TOTAL\t%s\t\n", out.Total.StringFixed(2))
			return w.Flush()
		}),
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(analytics.PeriodMonth), "window (today, week, month, year)")
	return cmd
}

func insightsCmd() *cobra.Command {
	var rotate bool

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show the current insight card",
		Long:  `Print the insight card at the saved rotation index. --rotate advances to the next card first.`,
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			input := insight.GetInsightsInput{OwnerID: a.ownerID}

			var (
				out *insight.GetInsightsOutput
				err error
			)
			if rotate {
				out, err = a.uc.RotateInsight.Execute(cmd.Context(), input)
			} else {
				out, err = a.uc.Insights.Execute(cmd.Context(), input)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "[%d/%d] %s\n", out.Index+1, insight.Count, out.Current.Title)
			fmt.Fprintf(a.out, "%s\n", out.Current.Value)
			if out.Current.Subtitle != "" {
				fmt.Fprintf(a.out, "%s\n", out.Current.Subtitle)
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&rotate, "rotate", false, "advance to the next card")
	return cmd
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the palette for the current limit usage",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.uc.Theme.Execute(cmd.Context(), theme.GetThemeInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "limit used\t%.1f%%\n", out.Percentage)
			fmt.Fprintf(w, "background\t%s\n", out.Background)
			fmt.Fprintf(w, "secondary\t%s\n", out.Secondary)
			fmt.Fprintf(w, "accent\t%s\n", out.Accent)
			fmt.Fprintf(w, "text\t%s\n", out.Text)
			return w.Flush()
		}),
	}
}
