package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchkit-tools/cli/internal/config"
	"github.com/launchkit-tools/cli/internal/dispatchers"
	"github.com/launchkit-tools/cli/internal/report"
	"github.com/launchkit-tools/cli/internal/usage"
)

type fixture struct {
	settings config.Settings
	saved    *config.Settings
	out      bytes.Buffer
	errb     bytes.Buffer
}

func newFixture() *fixture {
	return &fixture{settings: config.DefaultSettings()}
}

func (f *fixture) deps() Deps {
	return Deps{
		Load: func() (config.Settings, error) {
			return f.settings, nil
		},
		Save: func(s config.Settings) error {
			f.saved = &s
			return nil
		},
		Reporter: report.New(report.WithWriters(&f.out, &f.errb)),
	}
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(nil)
}

func TestGet_PrintsValue(t *testing.T) {
	f := newFixture()
	f.settings.Separator = ","

	err := getRun([]string{"separator"}, noFlags(), f.deps())

	require.NoError(t, err)
	require.Contains(t, f.out.String(), ",")
}

func TestGet_UnknownKey(t *testing.T) {
	f := newFixture()

	err := getRun([]string{"theme"}, noFlags(), f.deps())

	require.Error(t, err)
	ue, ok := err.(*usage.Error)
	require.True(t, ok)
	require.Equal(t, usage.ErrInvalidConfigKey, ue.Kind)
}

func TestGet_MissingKeyArg(t *testing.T) {
	f := newFixture()

	err := getRun(nil, noFlags(), f.deps())

	require.Error(t, err)
}

func TestSet_PersistsValue(t *testing.T) {
	f := newFixture()

	err := setRun([]string{"delay_ms", "250"}, noFlags(), f.deps())

	require.NoError(t, err)
	require.NotNil(t, f.saved)
	require.Equal(t, 250, f.saved.DelayMS)
	require.Contains(t, f.out.String(), "delay_ms = 250")
}

func TestSet_UnknownKey(t *testing.T) {
	f := newFixture()

	err := setRun([]string{"theme", "dark"}, noFlags(), f.deps())

	require.Error(t, err)
	require.Nil(t, f.saved)
}

func TestSet_BadValue(t *testing.T) {
	f := newFixture()

	err := setRun([]string{"delay_ms", "soon"}, noFlags(), f.deps())

	require.Error(t, err)
	require.Nil(t, f.saved)
}

func TestList_PrintsEveryKey(t *testing.T) {
	f := newFixture()

	err := listRun(nil, noFlags(), f.deps())

	require.NoError(t, err)
	for _, key := range config.Keys() {
		require.Contains(t, f.out.String(), key)
	}
}
