package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/SscSPs/fluxora_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "fluxoractl", root.Use)

	for _, path := range [][]string{{"migrate", "up"}, {"migrate", "down"}, {"migrate", "version"}, {"summary"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestSummaryRequiresUUID(t *testing.T) {
	called := false
	cmd := newSummaryCmd(func() (*config.Config, error) {
		called = true
		return nil, errors.New("unreachable")
	})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--user", "not-a-uuid"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--user must be a UUID")
	assert.False(t, called)
}

func TestSummaryRequiresUserFlag(t *testing.T) {
	cmd := newSummaryCmd(func() (*config.Config, error) { return nil, errors.New("unreachable") })
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(nil)

	assert.Error(t, cmd.Execute())
}

func TestMigrateLoadsConfigFirst(t *testing.T) {
	cmd := newMigrateCmd(func() (*config.Config, error) { return nil, errors.New("no config") })
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, "no config", err.Error())
}

func TestMigrationsSource(t *testing.T) {
	cfg := &config.Config{MigrationsURL: "file://migrations"}
	assert.Equal(t, "file://migrations", migrationsSource(cfg, ""))
	assert.Equal(t, "file:///opt/fluxora/migrations", migrationsSource(cfg, "file:///opt/fluxora/migrations"))
}
