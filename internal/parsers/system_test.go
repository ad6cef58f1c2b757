package parsers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUname(t *testing.T) {
	info, err := ParseUname("Linux web1 6.8.0-45-generic #45-Ubuntu SMP PREEMPT_DYNAMIC Fri Aug 30 12:02:04 UTC 2026 x86_64\n")
	require.NoError(t, err)

	assert.Equal(t, "Linux", info.Sysname)
	assert.Equal(t, "web1", info.Nodename)
	assert.Equal(t, "6.8.0-45-generic", info.Release)
	assert.Equal(t, "#45-Ubuntu SMP PREEMPT_DYNAMIC Fri Aug 30 12:02:04 UTC 2026", info.Version)
	assert.Equal(t, "x86_64", info.Machine)
}

func TestParseUnameMinimalVersion(t *testing.T) {
	info, err := ParseUname("Linux pi 6.6.20+rpt-rpi-v8 #1 aarch64\n")
	require.NoError(t, err)
	assert.Equal(t, "#1", info.Version)
	assert.Equal(t, "aarch64", info.Machine)
}

func TestParseUnameRejectsShort(t *testing.T) {
	_, err := ParseUname("Linux web1 6.8.0\n")
	assert.Error(t, err)
}

func TestParseProcUptime(t *testing.T) {
	info, err := ParseProcUptime("351735.21 2715146.93\n")
	require.NoError(t, err)

	assert.Equal(t, time.Duration(351735.21*float64(time.Second)), info.Uptime)
	assert.Equal(t, time.Duration(2715146.93*float64(time.Second)), info.Idle)

	_, err = ParseProcUptime("351735.21\n")
	assert.Error(t, err)
}

const osReleaseFixture = `NAME="Ubuntu"
VERSION="24.04.1 LTS (Noble Numbat)"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 24.04.1 LTS"
VERSION_ID="24.04"
HOME_URL="https://www.ubuntu.com/"
`

func TestParseOSRelease(t *testing.T) {
	os, err := ParseOSRelease(osReleaseFixture)
	require.NoError(t, err)

	assert.Equal(t, "Ubuntu", os.Name)
	assert.Equal(t, "ubuntu", os.ID)
	require.NotNil(t, os.VersionID)
	assert.Equal(t, "24.04", *os.VersionID)
	require.NotNil(t, os.PrettyName)
	assert.Equal(t, "Ubuntu 24.04.1 LTS", *os.PrettyName)
	require.NotNil(t, os.IDLike)
	assert.Equal(t, "debian", *os.IDLike)
}

func TestParseOSReleaseSparseFile(t *testing.T) {
	// Minimal distros ship only a couple of keys; the optionals stay nil.
	os, err := ParseOSRelease("NAME=\"Alpine Linux\"\nID=alpine\n")
	require.NoError(t, err)

	assert.Equal(t, "Alpine Linux", os.Name)
	assert.Nil(t, os.VersionID)
	assert.Nil(t, os.PrettyName)
	assert.Nil(t, os.IDLike)
}

func TestParseOSReleaseRejectsMalformed(t *testing.T) {
	_, err := ParseOSRelease("VERSION_ID=24.04\n")
	assert.Error(t, err, "NAME and ID are required")

	_, err = ParseOSRelease("NAME=Ubuntu\nID=ubuntu\nnot a key value line\n")
	assert.Error(t, err)
}

func TestParseLoadAvg(t *testing.T) {
	load, err := ParseLoadAvg("0.52 0.58 0.59 2/1270 12345\n")
	require.NoError(t, err)

	assert.Equal(t, 0.52, load.One)
	assert.Equal(t, 0.58, load.Five)
	assert.Equal(t, 0.59, load.Fifteen)
	assert.Equal(t, 2, load.Running)
	assert.Equal(t, 1270, load.Total)
	assert.Equal(t, 12345, load.LastPID)
}

func TestParseLoadAvgRejectsMalformed(t *testing.T) {
	_, err := ParseLoadAvg("0.52 0.58 0.59\n")
	assert.Error(t, err)

	_, err = ParseLoadAvg("0.52 0.58 0.59 21270 12345\n")
	assert.Error(t, err, "entity field must be running/total")
}

const whoFixture = `deploy   pts/0        2026-08-25 09:15 (203.0.113.5)
root     tty1         2026-08-24 22:03
`

func TestParseWho(t *testing.T) {
	users, err := ParseWho(whoFixture)
	require.NoError(t, err)
	require.Equal(t, 2, users.Count)

	ssh := users.Users[0]
	assert.Equal(t, "deploy", ssh.Username)
	assert.Equal(t, "pts/0", ssh.TTY)
	assert.Equal(t, time.Date(2026, 8, 25, 9, 15, 0, 0, time.UTC), ssh.LoginTime.UTC())
	require.NotNil(t, ssh.Host)
	assert.Equal(t, "203.0.113.5", *ssh.Host)

	console := users.Users[1]
	assert.Equal(t, "tty1", console.TTY)
	assert.Nil(t, console.Host, "local logins have no origin host")
}

func TestParseWhoEmpty(t *testing.T) {
	users, err := ParseWho("")
	require.NoError(t, err)
	assert.Equal(t, 0, users.Count)
}

func TestParseWhoRejectsMalformed(t *testing.T) {
	_, err := ParseWho("deploy pts/0\n")
	assert.Error(t, err)

	_, err = ParseWho("deploy pts/0 yesterday evening\n")
	assert.Error(t, err)
}
