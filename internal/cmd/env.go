package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kalkulator/internal/config"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the supported environment variables",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), config.Usage())
		return err
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
