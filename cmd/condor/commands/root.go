package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "condor",
		Short: "Condor - Conditional Module Resolution Engine",
		Long: `Condor resolves which candidate components of a modular application
should be activated, given the host environment and the components
already present.

Features:
  - Presence and absence conditions over a hierarchical registry
  - Property, classpath, resource, profile and capability conditions
  - Rego expression conditions
  - Nested ALL / ANY / NONE combinators
  - A full per-declaration evaluation report`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newEvaluateCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}
