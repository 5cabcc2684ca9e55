package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/vaultpass-engine/internal/config"
	"github.com/vaultpass/vaultpass-engine/internal/model"
	"github.com/vaultpass/vaultpass-engine/internal/service"
)

func newStrengthCmd(loadEngine engineFunc) *cobra.Command {
	var (
		ordering string
		explain  bool
	)

	cmd := &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate a password",
		Long: `Rates a password as Weak, Medium, Strong or Very Strong.

Without an argument the password is read from the first line of stdin,
which keeps it out of shell history.

Example:
  vaultpass strength 'Tr0ub4dor&3'
  pbpaste | vaultpass strength --explain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = line
			}

			e, err := engineWithOrdering(loadEngine, ordering)
			if err != nil {
				return err
			}
			rt, err := service.NewRuntime(e, nil, nil)
			if err != nil {
				return err
			}
			resp := service.NewStrengthService(rt).Check(model.StrengthRequest{Password: password})

			out := cmd.OutOrStdout()
			st := newStyles(out)
			fmt.Fprintln(out, st.tier(resp.Strength))
			if !explain {
				return nil
			}

			fmt.Fprintf(out, "%s %s (%s ordering)\n", st.key("rule:"), resp.Rule, resp.Ordering)
			fmt.Fprintf(out, "%s %d\n", st.key("length:"), resp.Length)
			fmt.Fprintf(out, "%s %d of 4 classes\n", st.key("variety:"), resp.Variety)
			if est := resp.Estimate; est != nil {
				fmt.Fprintf(out, "%s score %d/4, %.2f bits, cracked in %s\n", st.key("estimate:"), est.Score, est.EntropyBits, est.CrackTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ordering, "ordering", "", "rule ordering: compatible or corrected")
	cmd.Flags().BoolVar(&explain, "explain", false, "show the deciding rule and password features")
	return cmd
}

func newRulesCmd(loadEngine engineFunc) *cobra.Command {
	var ordering string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the strength rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := engineWithOrdering(loadEngine, ordering)
			if err != nil {
				return err
			}
			rt, err := service.NewRuntime(e, nil, nil)
			if err != nil {
				return err
			}
			rules := service.NewStrengthService(rt).Rules()

			out := cmd.OutOrStdout()
			st := newStyles(out)
			fmt.Fprintf(out, "%s %s\n", st.key("ordering:"), rules.Ordering)
			for i, r := range rules.Rules {
				fmt.Fprintf(out, "%d. %-18s %s\n", i+1, r.Name, st.tier(r.Tier))
			}
			fmt.Fprintf(out, "   %-18s %s\n", "fallback", st.tier(rules.Fallback))
			return nil
		},
	}

	cmd.Flags().StringVar(&ordering, "ordering", "", "rule ordering: compatible or corrected")
	return cmd
}

func engineWithOrdering(loadEngine engineFunc, ordering string) (config.Engine, error) {
	e, err := loadEngine()
	if err != nil {
		return config.Engine{}, err
	}
	if ordering != "" {
		e.Classifier.Ordering = ordering
	}
	return e, nil
}

// readLine returns the first line of r without its line ending. Empty input
// yields the empty password.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
