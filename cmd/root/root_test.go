package root

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetdash/internal/dateutils"
	"budgetdash/internal/models"
)

func setFlags(rangePreset, account, search string) {
	RangePreset = rangePreset
	Account = account
	Search = search
}

func TestCurrentFilterResolvesAccountName(t *testing.T) {
	st := models.DefaultState()
	setFlags(string(dateutils.PresetAll), "checking", "")

	f := CurrentFilter(st)
	assert.Equal(t, models.AccountDefaultID, f.AccountID)
	assert.Equal(t, dateutils.Range{Min: dateutils.SentinelMin, Max: dateutils.SentinelMax}, f.Range)
}

func TestCurrentFilterAcceptsAccountID(t *testing.T) {
	st := models.DefaultState()
	setFlags(string(dateutils.PresetAll), "acc-credit", "")

	f := CurrentFilter(st)
	assert.Equal(t, "acc-credit", f.AccountID)
}

func TestCurrentFilterWarnsOnUnknownAccount(t *testing.T) {
	st := models.DefaultState()
	setFlags(string(dateutils.PresetAll), "no-such-account", "")

	logger, hook := logtest.NewNullLogger()
	prev := Log
	Log = logger
	defer func() { Log = prev }()

	f := CurrentFilter(st)
	assert.Equal(t, "no-such-account", f.AccountID)

	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestCurrentFilterAllBypassesWarning(t *testing.T) {
	st := models.DefaultState()
	setFlags(string(dateutils.PresetAll), "all", "")

	logger, hook := logtest.NewNullLogger()
	prev := Log
	Log = logger
	defer func() { Log = prev }()

	f := CurrentFilter(st)
	assert.Equal(t, "all", f.AccountID)
	assert.Empty(t, hook.Entries)
}
