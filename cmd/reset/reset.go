// Package reset restores the fixed default dataset
package reset

import (
	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/state"
)

var force bool

// Cmd represents the reset command
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all data with the default dataset",
	Run:   resetFunc,
}

func init() {
	Cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation requirement")
}

func resetFunc(cmd *cobra.Command, args []string) {
	if !force {
		root.Log.Warn("Refusing to reset without --force")
		return
	}
	root.SaveState(state.Reset())
	root.Log.Info("State reset to the default dataset")
}
