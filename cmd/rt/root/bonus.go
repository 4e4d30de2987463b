package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

func newBonusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonus [id]",
		Short: "List financial bonuses, or credit one",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one bonus id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconMoney, "Financial bonuses"))
				for _, b := range svc.Catalog().Bonuses {
					fmt.Fprintf(out, "  %-16s %s %s\n", ui.Key.Render(b.ID), b.Name, ui.Muted.Render(fmt.Sprintf("+%d", b.Points)))
				}
				return nil
			}

			res := svc.AddFinancialBonus(ctx, args[0])
			if !res.Applied {
				return rejectionf(res.Reason, "%s", args[0])
			}
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconMoney+" Bonus"), res.Bonus.Name, ui.Muted.Render(fmt.Sprintf("(+%d)", res.Bonus.Points)))
			return nil
		},
	}

	return cmd
}
