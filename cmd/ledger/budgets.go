package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budgets",
	}

	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func addBudgetCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Cap spending in a category",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			out, err := a.uc.CreateBudget.Execute(cmd.Context(), budget.CreateBudgetInput{
				OwnerID:      a.ownerID,
				CategoryName: args[0],
				Amount:       amount,
				Period:       entity.BudgetPeriod(strings.ToLower(period)),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Budget %s: %s %s per %s (%s spent, %s)\n",
				out.Budget.ID, out.Budget.CategoryName, out.Budget.Amount.StringFixed(2), out.Budget.Period,
				out.Status.Spent.StringFixed(2), out.Status.Status)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(entity.BudgetPeriodMonth), "rolling window (week, month)")
	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with their status",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.uc.ListBudgets.Execute(cmd.Context(), budget.ListBudgetsInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}
			if len(out.Budgets) == 0 {
				fmt.Fprintln(a.out, "No budgets. Use 'ledger budget add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tPERIOD\tSPENT\tBUDGET\tUSED\tSTATUS")
			for _, b := range out.Budgets {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
					b.Budget.ID, b.Budget.CategoryName, b.Budget.Period,
					b.Status.Spent.StringFixed(2), b.Budget.Amount.StringFixed(2), b.Status.Percentage, b.Status.Status)
			}
			return w.Flush()
		}),
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <budget-id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid budget id %q", args[0])
			}
			if err := a.uc.DeleteBudget.Execute(cmd.Context(), budget.DeleteBudgetInput{OwnerID: a.ownerID, BudgetID: id}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted budget %s\n", id)
			return nil
		}),
	}
}

func limitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit",
		Short: "Manage the global spending limit",
	}

	cmd.AddCommand(setLimitCmd())
	cmd.AddCommand(limitStatusCmd())

	return cmd
}

func setLimitCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Replace the spending limit",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			limit, err := a.uc.SetLimit.Execute(cmd.Context(), budget.SetSpendingLimitInput{
				OwnerID: a.ownerID,
				Amount:  amount,
				Period:  entity.BudgetPeriod(strings.ToLower(period)),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Spending limit set to %s per %s\n", limit.Amount.StringFixed(2), limit.Period)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&period, "period", "p", string(entity.BudgetPeriodMonth), "rolling window (week, month)")
	return cmd
}

func limitStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show spending against the limit",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			status, err := a.uc.SpendingStatus.Execute(cmd.Context(), budget.GetSpendingStatusInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Spent %s of %s this %s (%.1f%%)\n",
				status.Spent.StringFixed(2), status.Limit.StringFixed(2), status.Period, status.Percentage)
			if status.IsOverLimit {
				fmt.Fprintln(a.out, "Over limit")
			}
			return nil
		}),
	}
}
