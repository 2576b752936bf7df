package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pawpal/app"
	"github.com/kilianp07/pawpal/infra/logger"
	"github.com/kilianp07/pawpal/pkg/export"
	"github.com/kilianp07/pawpal/planfile"
)

var (
	planFile   string
	planPolicy string
	planFormat string
	planDate   string
	serve      bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate today's care schedule from a plan file",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "plan file with owner, pets and tasks")
	planCmd.Flags().StringVar(&planPolicy, "policy", "", "override the configured sort policy")
	planCmd.Flags().StringVar(&planFormat, "format", "text", "output format: text, json or csv")
	planCmd.Flags().StringVar(&planDate, "date", "", "plan date as YYYY-MM-DD, default today")
	planCmd.Flags().BoolVar(&serve, "serve-metrics", false, "keep serving the metrics endpoint after planning")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if planPolicy != "" {
		cfg.Planner.Policy = planPolicy
		if err := cfg.Planner.Validate(); err != nil {
			return err
		}
	}

	owner, err := planfile.Load(planFile)
	if err != nil {
		return fmt.Errorf("load plan file: %w", err)
	}

	date := time.Now()
	if planDate != "" {
		date, err = time.ParseInLocation("2006-01-02", planDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("plan-command").Errorf("service close: %v", err)
		}
	}()

	plan, err := svc.GeneratePlan(owner, date)
	if err != nil {
		return err
	}

	switch planFormat {
	case "text":
		err = export.WriteSummary(cmd.OutOrStdout(), owner, plan)
	case "json":
		err = export.WriteJSON(cmd.OutOrStdout(), plan)
	case "csv":
		err = export.WriteCSV(cmd.OutOrStdout(), plan)
	default:
		return fmt.Errorf("unknown format: %s", planFormat)
	}
	if err != nil {
		return err
	}

	if serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return svc.ServeMetrics(ctx)
	}
	return nil
}
