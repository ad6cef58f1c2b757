package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crontabFixture = `# m h dom mon dow command
MAILTO=ops@example.com
*/5 * * * * /usr/local/bin/healthcheck.sh
0 3 * * 0 /usr/local/bin/backup.sh --full
@reboot /usr/local/bin/warm-cache
`

func TestParseCrontab(t *testing.T) {
	table, err := ParseCrontab("deploy")(crontabFixture)
	require.NoError(t, err)

	assert.Equal(t, "deploy", table.User)
	require.Equal(t, 3, table.Count, "comments and env assignments are not jobs")

	health := table.Jobs[0]
	require.NotNil(t, health.Minute)
	assert.Equal(t, "*/5", *health.Minute)
	require.NotNil(t, health.DayOfWeek)
	assert.Equal(t, "*", *health.DayOfWeek)
	assert.Nil(t, health.Shortcut)
	assert.Equal(t, "/usr/local/bin/healthcheck.sh", health.Command)

	backup := table.Jobs[1]
	require.NotNil(t, backup.Hour)
	assert.Equal(t, "3", *backup.Hour)
	require.NotNil(t, backup.DayOfWeek)
	assert.Equal(t, "0", *backup.DayOfWeek)
	assert.Equal(t, "/usr/local/bin/backup.sh --full", backup.Command)

	boot := table.Jobs[2]
	require.NotNil(t, boot.Shortcut)
	assert.Equal(t, "@reboot", *boot.Shortcut)
	assert.Nil(t, boot.Minute, "shortcut jobs carry no schedule fields")
	assert.Equal(t, "/usr/local/bin/warm-cache", boot.Command)
}

func TestParseCrontabTabSeparated(t *testing.T) {
	// Crontab fields may be separated by tabs or runs of spaces.
	table, err := ParseCrontab("root")("0\t5\t*\t*\t*\t/usr/local/bin/backup.sh --full\n@daily\t/usr/local/bin/rotate-logs\n")
	require.NoError(t, err)
	require.Equal(t, 2, table.Count)

	backup := table.Jobs[0]
	require.NotNil(t, backup.Minute)
	assert.Equal(t, "0", *backup.Minute)
	require.NotNil(t, backup.Hour)
	assert.Equal(t, "5", *backup.Hour)
	assert.Equal(t, "/usr/local/bin/backup.sh --full", backup.Command)

	rotate := table.Jobs[1]
	require.NotNil(t, rotate.Shortcut)
	assert.Equal(t, "@daily", *rotate.Shortcut)
	assert.Equal(t, "/usr/local/bin/rotate-logs", rotate.Command)
}

func TestParseCrontabEmpty(t *testing.T) {
	table, err := ParseCrontab("root")("")
	require.NoError(t, err)
	assert.Equal(t, 0, table.Count)
}

func TestParseCrontabRejectsMalformed(t *testing.T) {
	_, err := ParseCrontab("deploy")("@fortnightly /bin/true\n")
	assert.Error(t, err, "unknown shortcut")

	_, err = ParseCrontab("deploy")("*/5 * * /bin/true\n")
	assert.Error(t, err, "too few schedule fields")
}
