package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kalkulator/internal/formula"
)

// Eval command flags
var (
	evalVars  []string
	evalCheck bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <template>",
	Short: "Evaluate a pricing formula",
	Long: `Evaluate a formula template with the given variable bindings.

Placeholders are written {name} and must be one of:
  preis, anzahl, zeitaufwand, stundenlohn, schnittpreis, mwst

Examples:
  kalk eval "{preis} * {anzahl}" --var preis=52.5 --var anzahl=3
  kalk eval "{zeitaufwand} * {stundenlohn}" --var zeitaufwand=2 --var stundenlohn=60
  kalk eval --check "{preis} * {rabatt}"`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable binding name=value (repeatable)")
	evalCmd.Flags().BoolVar(&evalCheck, "check", false, "only validate the template")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	template := args[0]
	out := cmd.OutOrStdout()

	if evalCheck {
		if err := formula.Check(template); err != nil {
			return fmt.Errorf("invalid formula: %w", err)
		}
		fmt.Fprintln(out, "ok")
		return nil
	}

	bindings, err := parseBindings(evalVars)
	if err != nil {
		return err
	}

	v, err := formula.Eval(template, bindings)
	if err != nil {
		return fmt.Errorf("evaluating %q: %w", template, err)
	}
	fmt.Fprintln(out, strconv.FormatFloat(v, 'f', -1, 64))
	return nil
}

func parseBindings(raw []string) (map[string]float64, error) {
	bindings := make(map[string]float64, len(raw))
	for _, kv := range raw {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q: want name=value", kv)
		}
		name = strings.TrimSpace(name)
		if !formula.IsVariable(name) {
			return nil, fmt.Errorf("invalid --var %q: unknown variable %q", kv, name)
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value), ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var %q: %w", kv, err)
		}
		bindings[name] = v
	}
	return bindings, nil
}
