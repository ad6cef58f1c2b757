package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const psAuxFixture = `USER         PID %CPU %MEM    VSZ   RSS TTY      STAT START   TIME COMMAND
root           1  0.0  0.1 167744 11788 ?        Ss   Aug19   0:02 /sbin/init splash
deploy      2043  2.5  4.0 914520 81644 ?        Sl   09:15   1:07 /usr/bin/python3 -m app.server --port 8080
`

func TestParsePsAux(t *testing.T) {
	procs, err := ParsePsAux(psAuxFixture)
	require.NoError(t, err)
	require.Equal(t, 2, procs.Count)
	require.Len(t, procs.Processes, procs.Count)

	init := procs.Processes[0]
	assert.Equal(t, 1, init.PID)
	assert.Equal(t, "root", init.User)
	assert.Equal(t, 0.0, init.CPUPercent)
	assert.Equal(t, 0.1, init.MemPercent)
	// ps reports VSZ/RSS in KiB; the record carries bytes.
	assert.Equal(t, int64(167744*1024), init.VSZ)
	assert.Equal(t, int64(11788*1024), init.RSS)
	assert.Equal(t, "?", init.TTY)
	assert.Equal(t, "Ss", init.State)
	assert.Equal(t, "Aug19", init.Started)
	assert.Equal(t, "0:02", init.CPUTime)
	assert.Equal(t, "/sbin/init splash", init.Command)

	app := procs.Processes[1]
	assert.Equal(t, 2043, app.PID)
	assert.Equal(t, "/usr/bin/python3 -m app.server --port 8080", app.Command)
}

func TestParsePsAuxRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "wrong header", input: "PID USER COMMAND\n1 root init\n"},
		{name: "short row", input: psAuxFixture + "deploy 99\n"},
		{name: "bad pid", input: "USER PID %CPU %MEM VSZ RSS TTY STAT START TIME COMMAND\nroot abc 0.0 0.1 1 1 ? Ss Aug19 0:02 init\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePsAux(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParsePidStat(t *testing.T) {
	usage, err := ParsePidStat("   2043  2.5 81644 914520\n")
	require.NoError(t, err)

	assert.Equal(t, 2043, usage.PID)
	assert.Equal(t, 2.5, usage.CPUPercent)
	assert.Equal(t, int64(81644*1024), usage.RSS)
	assert.Equal(t, int64(914520*1024), usage.VSZ)
}

func TestParsePidStatRejectsMalformed(t *testing.T) {
	_, err := ParsePidStat("")
	assert.Error(t, err)

	_, err = ParsePidStat("2043 2.5 81644\n")
	assert.Error(t, err, "three fields is not a pid stat row")
}

const freeFixture = `               total        used        free      shared  buff/cache   available
Mem:      8323305472  3848272742  1073741824   269484032  3401290906  4174967296
Swap:     2147483648   536870912  1610612736
`

func TestParseFreeBytes(t *testing.T) {
	mem, err := ParseFreeBytes(freeFixture)
	require.NoError(t, err)

	assert.Equal(t, int64(8323305472), mem.Total)
	assert.Equal(t, int64(3848272742), mem.Used)
	assert.Equal(t, int64(1073741824), mem.Free)
	assert.Equal(t, int64(269484032), mem.Shared)
	assert.Equal(t, int64(3401290906), mem.BuffCache)
	assert.Equal(t, int64(4174967296), mem.Available)
	assert.InDelta(t, 46.23, mem.UsedPercent, 0.01)

	assert.Equal(t, int64(2147483648), mem.SwapTotal)
	assert.Equal(t, int64(536870912), mem.SwapUsed)
	assert.Equal(t, int64(1610612736), mem.SwapFree)
	assert.InDelta(t, 25.0, mem.SwapPercent, 0.01)
}

func TestParseFreeBytesNoSwapConfigured(t *testing.T) {
	mem, err := ParseFreeBytes("       total used free shared buff/cache available\nMem: 100 50 25 5 25 45\nSwap: 0 0 0\n")
	require.NoError(t, err)
	assert.Equal(t, int64(0), mem.SwapTotal)
	assert.Equal(t, 0.0, mem.SwapPercent, "no swap means no percentage, not a division by zero")
}

func TestParseFreeBytesRejectsMalformed(t *testing.T) {
	_, err := ParseFreeBytes("")
	assert.Error(t, err)

	_, err = ParseFreeBytes("Mem: 100 50 25 5 25 45\n")
	assert.Error(t, err, "missing Swap line")

	_, err = ParseFreeBytes("Mem: lots of memory\nSwap: 0 0 0\n")
	assert.Error(t, err)
}

const meminfoFixture = `MemTotal:        8128228 kB
MemFree:         1048576 kB
MemAvailable:    4077148 kB
Buffers:          262144 kB
Cached:          3321856 kB
SwapCached:            0 kB
Active:          4194304 kB
SwapTotal:       2097152 kB
SwapFree:        1572864 kB
Dirty:               128 kB
Slab:             524288 kB
`

func TestParseMeminfo(t *testing.T) {
	info, err := ParseMeminfo(meminfoFixture)
	require.NoError(t, err)

	// /proc/meminfo reports kB; the record carries bytes.
	assert.Equal(t, int64(8128228*1024), info.Total)
	assert.Equal(t, int64(1048576*1024), info.Free)
	assert.Equal(t, int64(4077148*1024), info.Available)
	assert.Equal(t, int64(262144*1024), info.Buffers)
	assert.Equal(t, int64(3321856*1024), info.Cached)
	assert.Equal(t, int64(2097152*1024), info.SwapTotal)
	assert.Equal(t, int64(1572864*1024), info.SwapFree)
	assert.Equal(t, int64(128*1024), info.Dirty)
	assert.Equal(t, int64(524288*1024), info.Slab)
}

func TestParseMeminfoRejectsMalformed(t *testing.T) {
	_, err := ParseMeminfo("MemFree: 1024 kB\n")
	assert.Error(t, err, "MemTotal is required")

	_, err = ParseMeminfo("MemTotal 8128228 kB\n")
	assert.Error(t, err, "no colon")

	_, err = ParseMeminfo("MemTotal: lots kB\nMemFree: 1024 kB\n")
	assert.Error(t, err)
}

const procStatFixture = `cpu  10000 200 3000 80000 500 0 300 0 0 0
cpu0 2500 50 750 20000 125 0 75 0 0 0
cpu1 2500 50 750 20000 125 0 75 0 0 0
cpu2 2500 50 750 20000 125 0 75 0 0 0
cpu3 2500 50 750 20000 125 0 75 0 0 0
intr 123456789 0 0
ctxt 987654321
btime 1756000000
`

func TestParseProcStat(t *testing.T) {
	times, err := ParseProcStat(procStatFixture)
	require.NoError(t, err)

	assert.Equal(t, 4, times.Cores)
	assert.Equal(t, int64(10000), times.UserJiffies)
	assert.Equal(t, int64(200), times.NiceJiffies)
	assert.Equal(t, int64(3000), times.SystemJiffies)
	assert.Equal(t, int64(80000), times.IdleJiffies)
	assert.Equal(t, int64(500), times.IOWaitJiffies)
	assert.Equal(t, int64(300), times.SoftIRQJiffies)

	assert.InDelta(t, 10.64, times.UserPercent, 0.01)
	assert.InDelta(t, 85.11, times.IdlePercent, 0.01)
	assert.InDelta(t, 3.19, times.SystemPercent, 0.01)
}

func TestParseProcStatRejectsMissingAggregate(t *testing.T) {
	_, err := ParseProcStat("cpu0 1 2 3 4 5 6 7\nintr 1\n")
	assert.Error(t, err)
}
