package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevBuild(t *testing.T) {
	info := Info{CommitHash: "dev", BuildTime: "unknown", Version: "dev"}

	_, ok := info.Semver()
	assert.False(t, ok)
	assert.Equal(t, "tsgen dev (commit dev, built unknown)", info.String())
	assert.Equal(t, "dev", info.Short())
}

func TestTaggedBuild(t *testing.T) {
	info := Info{
		CommitHash: "0123456789abcdef",
		BuildTime:  "2026-01-02T03:04:05Z",
		Version:    "v1.4.2",
	}

	v, ok := info.Semver()
	require.True(t, ok)
	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, uint64(4), v.Minor())

	assert.Equal(t, "0123456", info.Short())
	assert.Equal(t, "tsgen v1.4.2 (commit 0123456, built 2026-01-02T03:04:05Z)", info.String())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
