package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/pawpal/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pawpal",
	Short: "Daily pet-care planning",
	Long:  "pawpal turns an owner's pet-care tasks into a feasible daily schedule.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file. A missing file at the default
// location is not an error; the built-in defaults apply.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) && !rootCmd.PersistentFlags().Changed("config") {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
