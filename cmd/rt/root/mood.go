package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func newMoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood [1-10]",
		Short: "Show or set today's mood",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one value")
			}
			if len(args) == 1 {
				if _, err := strconv.Atoi(args[0]); err != nil {
					return errors.New("mood must be an integer")
				}
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

			if len(args) == 1 {
				v, _ := strconv.Atoi(args[0])
				if res := svc.SetMood(ctx, v); !res.Applied {
					return rejectionf(res.Reason, "want %d..%d", engine.MoodMin, engine.MoodMax)
				}
			}
			mood := svc.Mood()
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Mood", fmt.Sprintf("%s %d/%d", ui.MoodFace(mood), mood, engine.MoodMax)))
			return nil
		},
	}

	return cmd
}
