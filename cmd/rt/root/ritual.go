package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ritualist/internal/catalog"
	"ritualist/internal/ui"
)

func newRitualCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ritual",
		Aliases: []string{"r"},
		Short:   "List or toggle today's rituals",
		RunE:    runRitualList,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List rituals grouped by time slot",
			RunE:  runRitualList,
		},
		&cobra.Command{
			Use:   "toggle <key>",
			Short: "Mark a ritual done for today, or undo it",
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("ritual key is required")
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

				res := svc.ToggleRitual(ctx, args[0])
				if !res.Applied {
					return rejectionf(res.Reason, "%s", args[0])
				}
				def, _ := svc.Catalog().Ritual(res.Key)
				if res.Active {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Done"), def.Name, ui.Muted.Render(fmt.Sprintf("(+%d, streak %d)", res.Points, res.Streak)))
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Warn.Render(ui.IconLoop+" Undone"), def.Name, ui.Muted.Render(fmt.Sprintf("(-%d)", res.Points)))
				}
				return nil
			},
		},
	)
	return cmd
}

func runRitualList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	bySlot := svc.RitualsBySlot()
	out := cmd.OutOrStdout()
	for _, slot := range catalog.Slots {
		list := bySlot[slot]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintln(out, ui.H2.Render(ui.SlotIcon(string(slot))+" "+ui.SlotTitle(string(slot))))
		for _, r := range list {
			line := fmt.Sprintf("  %s %-18s %s", ui.Check(r.Active), r.Key, r.Name)
			extra := fmt.Sprintf("+%d", r.Points)
			if r.Streak > 0 {
				extra += fmt.Sprintf(" %s%d", ui.IconFire, r.Streak)
			}
			fmt.Fprintf(out, "%s %s\n", line, ui.Muted.Render(extra))
		}
	}
	return nil
}
