package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI once with the given stdin and args, returning stdout.
// A fresh App per call keeps cobra flag state from leaking between tests.
func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := executeErr(t, stdin, args...)
	require.NoError(t, err)
	return out
}

func executeErr(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := New()

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetErr(&out)
	app.rootCmd.SetIn(strings.NewReader(stdin))
	app.rootCmd.SetArgs(args)

	err := app.Execute()
	return out.String(), err
}

// writeRaw writes a file, creating parent directories.
func writeRaw(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// jsonString encodes a string as a JSON literal (handles Windows paths).
func jsonString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
