package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocket-ledger/backend/internal/application/usecase/achievement"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

func achievementsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show the achievement board",
		Long: `List unlocked achievements with the current streak. --all includes the
locked ones. Viewing the board marks new unlocks as seen.`,
		Args: cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.uc.ListAchievements.Execute(cmd.Context(), achievement.ListAchievementsInput{OwnerID: a.ownerID})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Streak: %d day(s), longest %d\n", out.Streak.CurrentStreak, out.Streak.LongestStreak)
			fmt.Fprintf(a.out, "Unlocked: %d, showcased: %d\n\n", out.UnlockedCount, out.ShowcasedCount)

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSTATUS\tDESCRIPTION")
			for _, item := range out.Achievements {
				if !item.Unlocked && !all {
					continue
				}
				status := "locked"
				switch {
				case item.Showcased:
					status = "showcased"
				case item.Unlocked:
					status = "unlocked " + item.UnlockedAt.In(a.clock.Now().Location()).Format("2006-01-02")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.Definition.ID, item.Definition.Name, status, item.Definition.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if out.HasUnseen {
				return a.uc.MarkSeen.Execute(cmd.Context(), achievement.MarkSeenInput{OwnerID: a.ownerID})
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&all, "all", false, "include locked achievements")
	return cmd
}

func showcaseCmd() *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "showcase <achievement-id>",
		Short: "Pin an unlocked achievement to the showcase",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, args []string, a *app) error {
			out, err := a.uc.ToggleShowcase.Execute(cmd.Context(), achievement.ToggleShowcaseInput{
				OwnerID:       a.ownerID,
				AchievementID: args[0],
				Showcased:     !remove,
			})
			if err != nil {
				return err
			}

			verb := "Showcased"
			if remove {
				verb = "Removed from showcase:"
			}
			fmt.Fprintf(a.out, "%s %s (%d/%d showcased)\n", verb, args[0], out.ShowcasedCount, entity.MaxShowcasedBadges)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "take the achievement off the showcase")
	return cmd
}
