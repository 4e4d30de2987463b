package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ritualist/internal/ui"
)

func newClaimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim <reward_id>",
		Short: "Spend points on a reward",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("reward_id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("reward_id must be an integer")
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

			id, _ := strconv.Atoi(args[0])
			res := svc.ClaimReward(ctx, id)
			if !res.Applied {
				if res.Reward.Name != "" {
					return rejectionf(res.Reason, "%s", res.Reward.Name)
				}
				return rejection(res.Reason)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconGift+" Claimed"), res.Reward.Name, ui.Muted.Render(fmt.Sprintf("(-%d)", res.Reward.Cost)))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.LabelValue("Balance", svc.Progression().Points),
				ui.Muted.Render(fmt.Sprintf("(available again in %d days)", res.Reward.ResetDays)))
			return nil
		},
	}

	return cmd
}
