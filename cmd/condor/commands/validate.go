package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/condor-engine/condor/pkg/manifest"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Validate a manifest without evaluating it",
		Long: `Validate a manifest file: YAML syntax, schema conformance, and the
construction of every condition attachment (unknown fields, missing
criteria, ambiguous attachments, mixed-phase combinators).`,
		Example: `  # Validate a manifest
  condor validate ./app.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			log.Info().Str("manifest", path).Msg("Validating manifest")

			m, err := manifest.Load(path)
			if err != nil {
				return err
			}
			units, err := m.BuildUnits()
			if err != nil {
				return err
			}

			fmt.Printf("%s: %d units, %d types, OK\n", m.Name, len(units), len(m.Types))
			return nil
		},
	}

	return cmd
}
