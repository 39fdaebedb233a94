// Package themecmd shows and sets the display theme preference
package themecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"budgetdash/cmd/root"
	"budgetdash/internal/theme"
)

// Cmd represents the theme command
var Cmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the display theme preference",
	Args:  cobra.MaximumNArgs(1),
	Run:   themeFunc,
}

func themeFunc(cmd *cobra.Command, args []string) {
	manager := theme.NewManager(theme.Theme(root.Store.LoadTheme()), nil)

	if len(args) == 0 {
		pref := string(manager.Preference())
		if pref == "" {
			pref = "system"
		}
		fmt.Printf("preference: %s, effective: %s\n", pref, manager.Effective())
		return
	}

	switch args[0] {
	case "light":
		manager.SetPreference(theme.Light)
	case "dark":
		manager.SetPreference(theme.Dark)
	case "system":
		manager.SetPreference(theme.System)
	default:
		root.Log.Errorf("Unknown theme: %s", args[0])
		return
	}

	root.Store.SaveTheme(string(manager.Preference()))
	root.Log.WithField("theme", manager.Effective()).Info("Theme preference saved")
}
