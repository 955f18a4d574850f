package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/projmeta/internal/params"
)

// execute runs a fresh root command so flag state never leaks between tests.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// isolateEnv unsets PROJMETA_* variables for the duration of the test
// and forces non-interactive mode.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, field := range []string{params.FieldGroup, params.FieldName, params.FieldVersion, params.FieldDescription} {
		name := params.EnvVar(field)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("PROJMETA_NON_INTERACTIVE", "1")
}

func writeProjectFile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projmeta.yaml"), []byte(content), 0644))
}

const demoProjectFile = `group: com.example
name: demo
version: 1.2.3
description: Demo
`
