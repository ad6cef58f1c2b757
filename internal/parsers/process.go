package parsers

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("ps", untyped(ParsePsAux))
	register("free", untyped(ParseFreeBytes))
	register("proc_stat", untyped(ParseProcStat))
	register("proc_meminfo", untyped(ParseMeminfo))
}

// ParsePsAux parses the full ps aux table. Rows keep ps output order;
// the VSZ and RSS columns are KiB in ps output and converted to bytes
// here.
func ParsePsAux(stdout string) (records.ProcessList, error) {
	lines := nonEmptyLines(stdout)
	if len(lines) == 0 {
		return records.ProcessList{}, fmt.Errorf("empty ps output")
	}

	header := strings.Fields(lines[0])
	if len(header) < 11 || header[1] != "PID" || header[len(header)-1] != "COMMAND" {
		return records.ProcessList{}, fmt.Errorf("unexpected ps header: %q", lines[0])
	}

	var procs []records.ProcessInfo
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 11 {
			return records.ProcessList{}, fmt.Errorf("short ps line: %q", line)
		}

		pid, err := parseInt(fields[1], "pid")
		if err != nil {
			return records.ProcessList{}, err
		}
		cpu, err := parseFloat(fields[2], "%cpu")
		if err != nil {
			return records.ProcessList{}, err
		}
		mem, err := parseFloat(fields[3], "%mem")
		if err != nil {
			return records.ProcessList{}, err
		}
		vsz, err := parseInt64(fields[4], "vsz")
		if err != nil {
			return records.ProcessList{}, err
		}
		rss, err := parseInt64(fields[5], "rss")
		if err != nil {
			return records.ProcessList{}, err
		}

		procs = append(procs, records.ProcessInfo{
			PID:        pid,
			User:       fields[0],
			CPUPercent: cpu,
			MemPercent: mem,
			VSZ:        vsz * 1024,
			RSS:        rss * 1024,
			TTY:        fields[6],
			State:      fields[7],
			Started:    fields[8],
			CPUTime:    fields[9],
			Command:    strings.Join(fields[10:], " "),
		})
	}

	return records.ProcessList{Processes: procs, Count: len(procs)}, nil
}

// ParsePidStat parses ps -o pid=,pcpu=,rss=,vsz= -p <pid> output: one
// headerless row. RSS/VSZ are converted from KiB to bytes.
func ParsePidStat(stdout string) (records.ProcessUsage, error) {
	fields := strings.Fields(stdout)
	if len(fields) != 4 {
		return records.ProcessUsage{}, fmt.Errorf("expected 4 ps fields, got %d in %q", len(fields), strings.TrimSpace(stdout))
	}

	pid, err := parseInt(fields[0], "pid")
	if err != nil {
		return records.ProcessUsage{}, err
	}
	cpu, err := parseFloat(fields[1], "%cpu")
	if err != nil {
		return records.ProcessUsage{}, err
	}
	rss, err := parseInt64(fields[2], "rss")
	if err != nil {
		return records.ProcessUsage{}, err
	}
	vsz, err := parseInt64(fields[3], "vsz")
	if err != nil {
		return records.ProcessUsage{}, err
	}

	return records.ProcessUsage{
		PID:        pid,
		CPUPercent: cpu,
		RSS:        rss * 1024,
		VSZ:        vsz * 1024,
	}, nil
}

// ParseFreeBytes parses free -b output. Because of -b every size is
// already bytes; nothing is scaled here.
func ParseFreeBytes(stdout string) (records.MemoryUsage, error) {
	var mem records.MemoryUsage
	var sawMem, sawSwap bool

	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		switch {
		case strings.HasPrefix(line, "Mem:"):
			if len(fields) < 7 {
				return records.MemoryUsage{}, fmt.Errorf("short Mem line: %q", line)
			}
			vals := make([]int64, 6)
			for i := 0; i < 6; i++ {
				v, err := parseInt64(fields[i+1], "mem field")
				if err != nil {
					return records.MemoryUsage{}, err
				}
				vals[i] = v
			}
			mem.Total, mem.Used, mem.Free = vals[0], vals[1], vals[2]
			mem.Shared, mem.BuffCache, mem.Available = vals[3], vals[4], vals[5]
			sawMem = true

		case strings.HasPrefix(line, "Swap:"):
			if len(fields) < 4 {
				return records.MemoryUsage{}, fmt.Errorf("short Swap line: %q", line)
			}
			total, err := parseInt64(fields[1], "swap total")
			if err != nil {
				return records.MemoryUsage{}, err
			}
			used, err := parseInt64(fields[2], "swap used")
			if err != nil {
				return records.MemoryUsage{}, err
			}
			free, err := parseInt64(fields[3], "swap free")
			if err != nil {
				return records.MemoryUsage{}, err
			}
			mem.SwapTotal, mem.SwapUsed, mem.SwapFree = total, used, free
			sawSwap = true
		}
	}

	if !sawMem || !sawSwap {
		return records.MemoryUsage{}, fmt.Errorf("free output missing Mem or Swap line")
	}

	if mem.Total > 0 {
		mem.UsedPercent = float64(mem.Used) / float64(mem.Total) * 100
	}
	if mem.SwapTotal > 0 {
		mem.SwapPercent = float64(mem.SwapUsed) / float64(mem.SwapTotal) * 100
	}
	return mem, nil
}

// meminfoFields maps /proc/meminfo keys to their record slot.
var meminfoFields = map[string]func(*records.Meminfo) *int64{
	"MemTotal":     func(m *records.Meminfo) *int64 { return &m.Total },
	"MemFree":      func(m *records.Meminfo) *int64 { return &m.Free },
	"MemAvailable": func(m *records.Meminfo) *int64 { return &m.Available },
	"Buffers":      func(m *records.Meminfo) *int64 { return &m.Buffers },
	"Cached":       func(m *records.Meminfo) *int64 { return &m.Cached },
	"SwapTotal":    func(m *records.Meminfo) *int64 { return &m.SwapTotal },
	"SwapFree":     func(m *records.Meminfo) *int64 { return &m.SwapFree },
	"Dirty":        func(m *records.Meminfo) *int64 { return &m.Dirty },
	"Slab":         func(m *records.Meminfo) *int64 { return &m.Slab },
}

// ParseMeminfo parses /proc/meminfo "Key:  value kB" lines into bytes.
// Keys the record does not carry are skipped; MemTotal and MemFree must
// be present.
func ParseMeminfo(stdout string) (records.Meminfo, error) {
	var info records.Meminfo
	var sawTotal, sawFree bool

	for _, line := range nonEmptyLines(stdout) {
		key, rest, found := strings.Cut(line, ":")
		if !found {
			return records.Meminfo{}, fmt.Errorf("malformed meminfo line: %q", line)
		}

		slot, wanted := meminfoFields[key]
		if !wanted {
			continue
		}

		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return records.Meminfo{}, fmt.Errorf("meminfo line missing value: %q", line)
		}
		kb, err := parseInt64(fields[0], key)
		if err != nil {
			return records.Meminfo{}, err
		}
		*slot(&info) = kb * 1024

		switch key {
		case "MemTotal":
			sawTotal = true
		case "MemFree":
			sawFree = true
		}
	}

	if !sawTotal || !sawFree {
		return records.Meminfo{}, fmt.Errorf("meminfo output missing MemTotal or MemFree")
	}
	return info, nil
}

// ParseProcStat parses /proc/stat: the aggregate cpu line for jiffy
// totals plus one cpuN line per core.
func ParseProcStat(stdout string) (records.CPUTimes, error) {
	var times records.CPUTimes
	var sawAggregate bool

	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "cpu") && len(line) > 3 && line[3] >= '0' && line[3] <= '9' {
			times.Cores++
			continue
		}

		if strings.HasPrefix(line, "cpu ") {
			fields := strings.Fields(line)
			if len(fields) < 8 {
				return records.CPUTimes{}, fmt.Errorf("short /proc/stat cpu line: %q", line)
			}

			vals := make([]int64, 7)
			for i := 0; i < 7; i++ {
				v, err := parseInt64(fields[i+1], "cpu jiffies")
				if err != nil {
					return records.CPUTimes{}, err
				}
				vals[i] = v
			}

			times.UserJiffies = vals[0]
			times.NiceJiffies = vals[1]
			times.SystemJiffies = vals[2]
			times.IdleJiffies = vals[3]
			times.IOWaitJiffies = vals[4]
			times.IRQJiffies = vals[5]
			times.SoftIRQJiffies = vals[6]
			sawAggregate = true
		}
	}
	if err := scanner.Err(); err != nil {
		return records.CPUTimes{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	if !sawAggregate {
		return records.CPUTimes{}, fmt.Errorf("no aggregate cpu line in /proc/stat output")
	}

	total := times.UserJiffies + times.NiceJiffies + times.SystemJiffies +
		times.IdleJiffies + times.IOWaitJiffies + times.IRQJiffies + times.SoftIRQJiffies
	if total > 0 {
		times.UserPercent = float64(times.UserJiffies) / float64(total) * 100
		times.SystemPercent = float64(times.SystemJiffies) / float64(total) * 100
		times.IdlePercent = float64(times.IdleJiffies) / float64(total) * 100
		times.IOWaitPercent = float64(times.IOWaitJiffies) / float64(total) * 100
	}
	return times, nil
}
