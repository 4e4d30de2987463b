package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ritualist/internal/engine"
	"ritualist/internal/ui"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON backup of all data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Export(ctx)
			b, err := engine.MarshalSnapshot(snap)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := cmd.OutOrStdout().Write(b)
				return err
			}
			path := output
			if path == "" {
				path = engine.BackupFileName(svc.Today())
			}
			if err := os.WriteFile(path, b, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconScroll+" Exported"), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout (default ritualist-backup-YYYY-MM-DD.json)")

	return cmd
}
