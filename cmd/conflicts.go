package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pawpal/app"
	"github.com/kilianp07/pawpal/planfile"
)

var conflictsFile string

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Check a plan file's time-stamped tasks for overlaps",
	RunE:  runConflicts,
}

func init() {
	conflictsCmd.Flags().StringVarP(&conflictsFile, "file", "f", "", "plan file with scheduled tasks")
	_ = conflictsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	owner, err := planfile.Load(conflictsFile)
	if err != nil {
		return fmt.Errorf("load plan file: %w", err)
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	conflicts := svc.DetectConflicts(owner.AllTasks())
	if len(conflicts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no conflicts")
		return nil
	}
	for _, c := range conflicts {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", c.Kind, c.Reason)
	}
	return fmt.Errorf("%d conflict(s) found", len(conflicts))
}
