package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Defaults(t *testing.T) {
	app := New()

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetArgs([]string{"version"})
	require.NoError(t, app.Execute())

	assert.Contains(t, out.String(), "reviewguard version dev")
	assert.Contains(t, out.String(), "commit: unknown")
}

func TestVersionCmd_SetVersion(t *testing.T) {
	app := New()
	app.SetVersion("1.2.3", "abc123", "2026-08-24")

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetArgs([]string{"version"})
	require.NoError(t, app.Execute())

	assert.Contains(t, out.String(), "reviewguard version 1.2.3")
	assert.Contains(t, out.String(), "commit: abc123")
	assert.Contains(t, out.String(), "built: 2026-08-24")
}
