package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/condor-engine/condor/pkg/engine"
	"github.com/condor-engine/condor/pkg/manifest"
)

func newEvaluateCommand() *cobra.Command {
	var (
		watch      bool
		properties []string
		profiles   []string
	)

	cmd := &cobra.Command{
		Use:   "evaluate <manifest>",
		Short: "Run a resolution pass over a manifest",
		Long: `Evaluate the conditions of every candidate unit in the manifest and
report which declarations were included and why the others were not.`,
		Example: `  # Evaluate a manifest
  condor evaluate ./app.yaml

  # Override environment properties and profiles
  condor evaluate --property cache.redis.enabled=true --profile production ./app.yaml

  # Re-evaluate whenever the manifest changes
  condor evaluate --watch ./app.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			overrides, err := parseProperties(properties)
			if err != nil {
				return err
			}

			if err := runEvaluate(cmd.Context(), path, overrides, profiles); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchAndEvaluate(cmd.Context(), path, overrides, profiles)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-evaluate when the manifest changes")
	cmd.Flags().StringArrayVar(&properties, "property", nil, "override an environment property (key=value)")
	cmd.Flags().StringArrayVar(&profiles, "profile", nil, "activate an additional profile")

	return cmd
}

// runEvaluate loads the manifest and runs one resolution pass.
func runEvaluate(ctx context.Context, path string, overrides map[string]string, profiles []string) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	units, err := m.BuildUnits()
	if err != nil {
		return err
	}

	if m.Environment.Properties == nil && len(overrides) > 0 {
		m.Environment.Properties = make(map[string]string, len(overrides))
	}
	for key, value := range overrides {
		m.Environment.Properties[key] = value
	}

	opts := m.Options()
	opts.Logger = log.Logger
	opts.Profiles = append(opts.Profiles, profiles...)

	log.Info().
		Str("manifest", m.Name).
		Int("units", len(units)).
		Msg("Evaluating manifest")

	result, err := engine.New(opts).Resolve(ctx, units)
	if err != nil {
		return err
	}
	return printResult(result)
}

// watchAndEvaluate re-runs the pass whenever the manifest file changes,
// until the context is cancelled.
func watchAndEvaluate(ctx context.Context, path string, overrides map[string]string, profiles []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	log.Info().Str("manifest", path).Msg("Watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Info().Str("manifest", path).Msg("Manifest changed, re-evaluating")
			if err := runEvaluate(ctx, path, overrides, profiles); err != nil {
				// Keep watching; the author is likely mid-edit.
				log.Error().Err(err).Msg("Evaluation failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// reportOutput is the JSON shape of one resolution pass.
type reportOutput struct {
	ID           string                    `json:"id"`
	Included     []string                  `json:"included"`
	Excluded     []string                  `json:"excluded"`
	Declarations map[string][]engine.Entry `json:"declarations"`
}

// printResult renders the pass outcome as text or JSON.
func printResult(result *engine.Result) error {
	report := result.Report

	if jsonOutput {
		out := reportOutput{
			ID:           report.ID,
			Included:     report.Included(),
			Excluded:     report.Excluded(),
			Declarations: make(map[string][]engine.Entry),
		}
		for _, name := range report.Declarations() {
			out.Declarations[name] = report.Entries(name)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	}

	fmt.Println("Included:")
	for _, name := range report.Included() {
		fmt.Printf("  %s\n", name)
		if verbose {
			printEntries(report, name)
		}
	}
	fmt.Println("Excluded:")
	for _, name := range report.Excluded() {
		fmt.Printf("  %s\n", name)
		printEntries(report, name)
	}
	return nil
}

// printEntries lists the condition outcomes recorded for a declaration.
func printEntries(report *engine.Report, name string) {
	for _, entry := range report.Entries(name) {
		fmt.Printf("    - %s\n", entry.Outcome.String())
	}
}

// parseProperties splits key=value flag values.
func parseProperties(pairs []string) (map[string]string, error) {
	overrides := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid property override %q, want key=value", pair)
		}
		overrides[key] = value
	}
	return overrides, nil
}
