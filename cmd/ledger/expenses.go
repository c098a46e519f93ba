package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/expense"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/integration/export"
)

func logCmd() *cobra.Command {
	var (
		payment     string
		cardID      string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "log <amount> <category>",
		Short: "Log an expense",
		Long: `Append an expense to the ledger. The streak, achievements and budget
alerts are updated after the save.`,
		Args: cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			input := expense.SaveExpenseInput{
				OwnerID:     a.ownerID,
				Amount:      amount,
				Category:    args[1],
				PaymentType: entity.PaymentType(strings.ToLower(payment)),
				Description: description,
			}
			if cardID != "" {
				id, err := uuid.Parse(cardID)
				if err != nil {
					return fmt.Errorf("invalid card id %q", cardID)
				}
				input.CardID = &id
			}
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, a.clock.Now().Location())
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				input.Date = d
			}

			out, err := a.uc.SaveExpense.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Logged %s in %s (%s)\n", out.Expense.Amount.StringFixed(2), out.Expense.Category, out.Expense.PaymentType)
			fmt.Fprintf(a.out, "Streak: %d day(s), longest %d\n", out.Streak.CurrentStreak, out.Streak.LongestStreak)
			if out.Notification != nil {
				fmt.Fprintf(a.out, "Achievement unlocked: %s (%s)\n", out.Notification.Name, out.Notification.Description)
			}
			for _, def := range out.NewlyUnlocked {
				if out.Notification != nil && def.ID == out.Notification.ID {
					continue
				}
				fmt.Fprintf(a.out, "Also unlocked: %s\n", def.Name)
			}
			if alert := out.BudgetAlert; alert != nil {
				fmt.Fprintf(a.out, "Budget %s: %s spent %s of %s this %s\n",
					alert.Status, alert.CategoryName, alert.Spent.StringFixed(2), alert.BudgetAmount.StringFixed(2), alert.Period)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&payment, "payment", string(entity.PaymentTypeCash), "payment type (cash, card, wallet)")
	cmd.Flags().StringVar(&cardID, "card", "", "card id, required for card payments")
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional note")
	cmd.Flags().StringVar(&date, "date", "", "expense date as YYYY-MM-DD (default: today)")

	return cmd
}

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List every logged expense",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.uc.ListExpenses.Execute(cmd.Context(), expense.ListExpensesInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}
			if len(out.Expenses) == 0 {
				fmt.Fprintln(a.out, "No expenses yet. Use 'ledger log' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCATEGORY\tAMOUNT\tPAYMENT\tDESCRIPTION")
			for _, e := range out.Expenses {
				payment := string(e.PaymentType)
				if e.CardNickname != "" {
					payment += " (" + e.CardNickname + ")"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Date.In(a.clock.Now().Location()).Format("2006-01-02"), e.Category, e.Amount.StringFixed(2), payment, e.Description)
			}
			fmt.Fprintf(w, "\tTOTAL\t%s\t\t\n", out.Total.StringFixed(2))
			return w.Flush()
		}),
	}
}

func exportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the ledger as a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			out, err := a.uc.ListExpenses.Execute(cmd.Context(), expense.ListExpensesInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return export.Write(a.out, f, out.Expenses)
			}

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := export.Write(file, f, out.Expenses); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("failed to close %s: %w", output, err)
			}
			fmt.Fprintf(a.out, "Exported %d expense(s) to %s\n", len(out.Expenses), output)
			return nil
		}),
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatXLSX), "file format (xlsx, csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file, - for stdout")

	return cmd
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	return amount, nil
}
