package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumb-messenger/internal/domain/build"
)

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.4.2", Commit: "abc1234", BuildDate: "2026-01-02", GoVersion: "go1.25.3"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	t.Run("full", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"version"})
		t.Cleanup(func() { versionShort = false })

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "1.4.2")
		assert.Contains(t, out.String(), "abc1234")
		assert.Contains(t, out.String(), "github.com/bnema/dumb-messenger")
	})

	t.Run("short", func(t *testing.T) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs([]string{"version", "--short"})
		t.Cleanup(func() { versionShort = false })

		require.NoError(t, rootCmd.Execute())
		assert.Equal(t, "1.4.2\n", out.String())
	})
}
