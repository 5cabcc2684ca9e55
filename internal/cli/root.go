// Package cli implements the vaultpass command line.
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/vaultpass-engine/internal/config"
)

type engineFunc func() (config.Engine, error)

// NewRootCmd builds the vaultpass command tree. src supplies randomness for
// generate; nil uses crypto/rand.
func NewRootCmd(src io.Reader) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "vaultpass",
		Short:         "Generate random passwords and rate password strength",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "engine settings file (YAML)")

	loadEngine := func() (config.Engine, error) {
		if configPath == "" {
			return config.DefaultEngine(), nil
		}
		return config.LoadEngine(configPath)
	}

	root.AddCommand(
		newGenerateCmd(loadEngine, src),
		newStrengthCmd(loadEngine),
		newRulesCmd(loadEngine),
	)
	return root
}
