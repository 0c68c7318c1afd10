package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreBuildInfo(t *testing.T) {
	v, c, d := Version, GitCommit, BuildDate
	t.Cleanup(func() { SetBuildInfo(v, c, d) })
}

func TestGetInfo(t *testing.T) {
	restoreBuildInfo(t)
	SetBuildInfo("1.2.3", "abcdef1234567890", "2026-01-15")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abcdef1234567890", info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGetInfoRejectsInvalidVersion(t *testing.T) {
	restoreBuildInfo(t)
	SetBuildInfo("not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	assert.Error(t, err)
}

func TestGetBaseVersion(t *testing.T) {
	restoreBuildInfo(t)

	SetBuildInfo("1.2.3-rc.1+45.abc", "unknown", "unknown")
	assert.Equal(t, "1.2.3", GetBaseVersion())
	assert.True(t, IsPrerelease())

	SetBuildInfo("1.2.3", "unknown", "unknown")
	assert.False(t, IsPrerelease())
}

func TestGetFormattedVersion(t *testing.T) {
	restoreBuildInfo(t)

	SetBuildInfo("1.2.3", "unknown", "unknown")
	assert.Equal(t, "Mi Dosis v1.2.3", GetFormattedVersion())
	assert.True(t, IsDevelopment())

	SetBuildInfo("1.2.3", "abcdef1234567890", "2026-01-15")
	assert.Equal(t, "Mi Dosis v1.2.3, commit abcdef1, built 2026-01-15", GetFormattedVersion())
	assert.False(t, IsDevelopment())
}
