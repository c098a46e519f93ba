package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/card"
	"github.com/pocket-ledger/backend/internal/application/usecase/category"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage expense categories",
	}

	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func addCategoryCmd() *cobra.Command {
	var icon string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			out, err := a.uc.CreateCategory.Execute(cmd.Context(), category.CreateCategoryInput{
				OwnerID: a.ownerID,
				Name:    args[0],
				Icon:    icon,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added category %s (%s)\n", out.Category.Name, out.Category.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&icon, "icon", "", "icon key")
	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with usage",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.uc.ListCategories.Execute(cmd.Context(), category.ListCategoriesInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEXPENSES\tTOTAL\tDEFAULT")
			for _, c := range out.Categories {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%t\n",
					c.Category.ID, c.Category.Name, c.ExpenseCount, c.Total.StringFixed(2), c.Category.IsDefault)
			}
			return w.Flush()
		}),
	}
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete an unused custom category",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid category id %q", args[0])
			}
			if _, err := a.uc.DeleteCategory.Execute(cmd.Context(), category.DeleteCategoryInput{OwnerID: a.ownerID, CategoryID: id}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted category %s\n", id)
			return nil
		}),
	}
}

func cardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage payment cards",
	}

	cmd.AddCommand(addCardCmd())
	cmd.AddCommand(listCardsCmd())
	cmd.AddCommand(deleteCardCmd())

	return cmd
}

func addCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <nickname> <last-four>",
		Short: "Add a payment card",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			c, err := a.uc.CreateCard.Execute(cmd.Context(), card.CreateCardInput{
				OwnerID:  a.ownerID,
				Nickname: args[0],
				LastFour: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Added card %s ending %s (%s)\n", c.Nickname, c.LastFour, c.ID)
			return nil
		}),
	}
}

func listCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List payment cards",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			cards, err := a.uc.ListCards.Execute(cmd.Context(), a.ownerID)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Fprintln(a.out, "No cards. Use 'ledger card add' to create one.")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNICKNAME\tLAST FOUR")
			for _, c := range cards {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Nickname, c.LastFour)
			}
			return w.Flush()
		}),
	}
}

func deleteCardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a payment card",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid card id %q", args[0])
			}
			if err := a.uc.DeleteCard.Execute(cmd.Context(), card.DeleteCardInput{OwnerID: a.ownerID, CardID: id}); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Deleted card %s\n", id)
			return nil
		}),
	}
}
