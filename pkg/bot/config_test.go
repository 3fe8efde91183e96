// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package bot

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	testfile := `---
labels:
  - good first issue
  - help wanted
windowDays: 7
dbPath: /var/lib/bot/db.json
credsPath: /etc/bot/credentials.json
maxHistory: 250
`
	f, err := os.CreateTemp("", "yaml-test-")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	require.NoError(t, os.WriteFile(f.Name(), []byte(testfile), os.FileMode(0o644)))

	conf, err := LoadConfig(f.Name())
	require.NoError(t, err)
	require.NoError(t, conf.Validate())

	require.Equal(t, []string{"good first issue", "help wanted"}, conf.Labels)
	require.Equal(t, 7, conf.WindowDays)
	require.Equal(t, "/var/lib/bot/db.json", conf.DBPath)
	require.Equal(t, "/etc/bot/credentials.json", conf.CredsPath)
	require.Equal(t, 250, conf.MaxHistory)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		Setup       func(*Config)
		ShouldError bool
	}{
		{func(c *Config) {}, false},
		{func(c *Config) { c.Labels = []string{"good first issue", ""} }, true},
		{func(c *Config) { c.WindowDays = -1 }, true},
		{func(c *Config) { c.MaxHistory = -5 }, true},
	}

	for _, tc := range tests {
		sut := &Config{Labels: []string{"good first issue"}, WindowDays: 15}
		tc.Setup(sut)
		if tc.ShouldError {
			require.Error(t, sut.Validate())
		} else {
			require.NoError(t, sut.Validate())
		}
	}
}

func TestConfigApply(t *testing.T) {
	opts := DefaultOptions()
	conf := &Config{WindowDays: 3}
	conf.Apply(opts)

	// Set values override, everything else keeps its default
	require.Equal(t, 3, opts.WindowDays)
	require.Equal(t, DefaultLabels, opts.Labels)
	require.Equal(t, DefaultDBPath, opts.DBPath)
	require.Equal(t, DefaultCredsPath, opts.CredsPath)
}
