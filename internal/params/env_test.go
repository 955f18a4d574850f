package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/projmeta/internal/metadata"
)

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFromEnviron(t *testing.T) {
	env := map[string]string{
		"PROJMETA_VERSION":     "2.0.0",
		"PROJMETA_DESCRIPTION": "",
		"UNRELATED":            "x",
	}
	layer := FromEnvMap(env)

	assert.Equal(t, Layer{FieldVersion: "2.0.0", FieldDescription: ""}, layer)
}

func TestFromEnviron_ProcessEnv(t *testing.T) {
	t.Setenv("PROJMETA_GROUP", "org.acme")

	layer := FromEnviron(os.LookupEnv)
	assert.Equal(t, "org.acme", layer[FieldGroup])
}

func TestFromEnvFiles_LaterOverridesEarlier(t *testing.T) {
	first := writeEnvFile(t, "base.env", "# shared\nPROJMETA_GROUP=com.example\nPROJMETA_VERSION=1.0.0\n")
	second := writeEnvFile(t, "release.env", "PROJMETA_VERSION=\"1.1.0-rc.1\"\nOTHER=ignored\n")

	layer, err := FromEnvFiles([]string{first, second})
	require.NoError(t, err)

	assert.Equal(t, "com.example", layer[FieldGroup])
	assert.Equal(t, "1.1.0-rc.1", layer[FieldVersion])
	_, hasName := layer[FieldName]
	assert.False(t, hasName)
}

func TestFromEnvFiles_Missing(t *testing.T) {
	_, err := FromEnvFiles([]string{filepath.Join(t.TempDir(), "missing.env")})
	assert.Error(t, err)
}

func TestApply_Priority(t *testing.T) {
	base := metadata.ProjectMetadata{Group: "com.example", Name: "demo", Version: "1.0.0", Description: "from yaml"}

	got := Apply(base,
		Layer{FieldVersion: "1.1.0"},
		Layer{FieldVersion: "1.2.0", FieldDescription: ""},
	)

	assert.Equal(t, metadata.ProjectMetadata{Group: "com.example", Name: "demo", Version: "1.2.0", Description: ""}, got)
	assert.Equal(t, "1.0.0", base.Version, "base must not be mutated")
}

func TestApply_NoLayers(t *testing.T) {
	base := metadata.ProjectMetadata{Group: "g", Name: "n", Version: "1.0.0"}
	assert.Equal(t, base, Apply(base))
}

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "PROJMETA_VERSION", EnvVar(FieldVersion))
	assert.Equal(t, "", EnvVar("unknown"))
}
