// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"budgetdash/internal/analytics"
	"budgetdash/internal/classify"
	"budgetdash/internal/config"
	"budgetdash/internal/csvcodec"
	"budgetdash/internal/currencyutils"
	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
	"budgetdash/internal/state"
	"budgetdash/internal/store"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store is the snapshot persistence boundary
	Store *store.Store

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budgetdash",
		Short: "A personal finance dashboard: track transactions, budgets, and spending trends.",
		Long: `budgetdash ingests transactions, categorizes them with ordered rules,
and computes totals, budget progress, cashflow, and period-over-period
insights over a locally persisted dataset.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budgetdash!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			if os.Getenv("LOG_LEVEL") == "" {
				if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
					Log.SetLevel(level)
				}
			}

			// Push the configured logger into the leaf packages
			currencyutils.SetLogger(Log)
			dateutils.SetLogger(Log)
			csvcodec.SetLogger(Log)
			classify.SetLogger(Log)
			analytics.SetLogger(Log)
			state.SetLogger(Log)
			store.SetLogger(Log)

			Store = store.New(cfg.Data.Directory)
		},
	}

	// Shared filter flags for the view commands
	RangePreset string
	Account     string
	Search      string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&RangePreset, "range", "r", string(dateutils.PresetThisMonth),
		"Date range preset: this_month, last_month, last_90, all")
	Cmd.PersistentFlags().StringVarP(&Account, "account", "a", analytics.AllAccounts,
		"Account name to filter by, or 'all'")
	Cmd.PersistentFlags().StringVarP(&Search, "search", "s", "",
		"Free-text search over merchant, note, and category")
}

// LoadState loads the persisted snapshot. On first run the config's
// display and categorization preferences seed the fresh dataset.
func LoadState() models.AppState {
	fresh := !Store.StateExists()
	st := Store.Load()
	if fresh {
		st.Settings.Currency = models.Currency(Cfg.Display.Currency)
		st.Settings.HideCents = Cfg.Display.HideCents
		st.Settings.SmartCategorize = Cfg.Categorization.Smart
	}
	return st
}

// SaveState persists a snapshot after a mutation.
func SaveState(st models.AppState) {
	Store.Save(st)
}

// CurrentFilter builds the engine filter from the shared flags. The
// range preset must be one of the closed set, and account names are
// resolved against the loaded state with a warning when neither a name
// nor an id matches.
func CurrentFilter(st models.AppState) analytics.Filter {
	preset, err := dateutils.ParsePreset(RangePreset)
	if err != nil {
		Log.Fatalf("Invalid --range: %v (valid presets: %s, %s, %s, %s)", err,
			dateutils.PresetThisMonth, dateutils.PresetLastMonth, dateutils.PresetLast90, dateutils.PresetAll)
	}

	accountID := Account
	if a, ok := st.AccountByName(Account); ok {
		accountID = a.ID
	} else if Account != "" && Account != analytics.AllAccounts {
		if _, ok := st.AccountByID(Account); !ok {
			Log.Warnf("Unknown account %q, no transactions will match", Account)
		}
	}

	return analytics.Filter{
		Range:     dateutils.RangeForPreset(preset),
		AccountID: accountID,
		Search:    Search,
	}
}
