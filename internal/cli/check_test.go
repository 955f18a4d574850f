package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/projmeta/internal/metadata"
	"github.com/vvka-141/projmeta/pkg/projmeta"
)

func TestCheckCmd_Valid(t *testing.T) {
	stdout, _, err := execute(t, "check", "1.0.0-beta.1+build.5")
	require.NoError(t, err)

	assert.Contains(t, stdout, "1.0.0-beta.1+build.5 is a valid semantic version")
	assert.Contains(t, stdout, "prerelease")
	assert.Contains(t, stdout, "beta.1")
	assert.Contains(t, stdout, "build.5")
}

func TestCheckCmd_JSON(t *testing.T) {
	stdout, _, err := execute(t, "check", "2.4.6", "--json")
	require.NoError(t, err)

	var info metadata.VersionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, metadata.VersionInfo{Original: "2.4.6", Major: 2, Minor: 4, Patch: 6}, info)
}

func TestCheckCmd_Invalid(t *testing.T) {
	_, _, err := execute(t, "check", "v1.0.0")
	require.Error(t, err)
	assert.Equal(t, projmeta.ExitInvalidMetadata, projmeta.ExitCodeForError(err))
	assert.Contains(t, err.Error(), "Hint: Provide a valid version")
}

func TestCheckCmd_RequiresArg(t *testing.T) {
	_, _, err := execute(t, "check")
	require.Error(t, err)
	assert.Equal(t, projmeta.ExitUsageError, projmeta.ExitCodeForError(err))
}
