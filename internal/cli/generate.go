package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

func newGenerateCmd(loadEngine engineFunc, src io.Reader) *cobra.Command {
	var (
		length       int
		count        int
		noUpper      bool
		noLower      bool
		noNumbers    bool
		noSymbols    bool
		unbiased     bool
		showStrength bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generates passwords from the enabled character classes.

Example:
  vaultpass generate --length 24 --count 5
  vaultpass generate --no-symbols --show-strength`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			e, err := loadEngine()
			if err != nil {
				return err
			}
			if unbiased {
				e.Generator.RejectionSampling = true
			}
			rt, err := service.NewRuntime(e, src, nil)
			if err != nil {
				return err
			}
			svc := service.NewGeneratorService(rt)

			req := model.GenerateRequest{Length: length}
			flags := cmd.Flags()
			if flags.Changed("no-upper") {
				req.Uppercase = boolPtr(!noUpper)
			}
			if flags.Changed("no-lower") {
				req.Lowercase = boolPtr(!noLower)
			}
			if flags.Changed("no-numbers") {
				req.Numbers = boolPtr(!noNumbers)
			}
			if flags.Changed("no-symbols") {
				req.Symbols = boolPtr(!noSymbols)
			}

			out := cmd.OutOrStdout()
			st := newStyles(out)
			for i := 0; i < count; i++ {
				resp, err := svc.Generate(req)
				if err != nil {
					return err
				}
				if showStrength {
					fmt.Fprintf(out, "%s  %s\n", resp.Password, st.tier(resp.Strength))
					continue
				}
				fmt.Fprintln(out, resp.Password)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&length, "length", "l", 0, "password length (0 uses the configured default)")
	f.IntVarP(&count, "count", "n", 1, "number of passwords")
	f.BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	f.BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	f.BoolVar(&noNumbers, "no-numbers", false, "exclude digits")
	f.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	f.BoolVar(&unbiased, "unbiased", false, "use rejection sampling so every character is equally likely")
	f.BoolVar(&showStrength, "show-strength", false, "print the strength tier next to each password")
	return cmd
}

func boolPtr(b bool) *bool { return &b }
