package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmdRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	verify, _, err := root.Find([]string{"verify"})
	require.NoError(t, err)
	assert.Equal(t, "verify", verify.Name())

	find, _, err := root.Find([]string{"find"})
	require.NoError(t, err)
	assert.Equal(t, "find", find.Name())
}

func TestVerifyCmdFlagDefaults(t *testing.T) {
	cmd := newVerifyCmd()

	timeout, err := cmd.Flags().GetUint64("timeout")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), timeout)

	ratio, err := cmd.Flags().GetFloat32("min-step-ratio")
	require.NoError(t, err)
	assert.Equal(t, float32(3.0), ratio)
}

func TestLoadPuzzleRequiresFileOrStdin(t *testing.T) {
	_, err := loadPuzzle("", false)
	assert.Error(t, err)
}
