package parsers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/rmac/internal/records"
)

func TestLookupDispatchesByFamily(t *testing.T) {
	fn, ok := Lookup("free")
	require.True(t, ok)

	out, err := fn(freeFixture)
	require.NoError(t, err)

	mem, ok := out.(records.MemoryUsage)
	require.True(t, ok, "registry returns the parser's typed record")
	assert.Equal(t, int64(8323305472), mem.Total)
}

func TestLookupUnknownFamily(t *testing.T) {
	_, ok := Lookup("nonexistent")
	assert.False(t, ok)
}

func TestFamiliesSortedAndComplete(t *testing.T) {
	families := Families()

	assert.True(t, sort.StringsAreSorted(families))
	for _, want := range []string{
		"crontab", "df", "docker_ps", "free", "git_status",
		"journalctl", "ls", "ping", "ps", "systemctl_show", "uname",
	} {
		assert.Contains(t, families, want)
	}
}
