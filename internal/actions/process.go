package actions

import (
	"context"
	"strconv"
	"strings"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// PS is the process command family.
type PS struct {
	s *remote.Session
}

// List returns every process in ps aux order.
func (p PS) List(ctx context.Context) (records.ProcessList, error) {
	return remote.Run(ctx, p.s, "ps", []string{"aux"}, parsers.ParsePsAux)
}

// Usage returns the live cpu/memory figures for one pid.
func (p PS) Usage(ctx context.Context, pid int) (records.ProcessUsage, error) {
	return remote.Run(ctx, p.s, "ps",
		[]string{"-o", "pid=,pcpu=,rss=,vsz=", "-p", strconv.Itoa(pid)},
		parsers.ParsePidStat)
}

// Find returns the pids whose full command line matches pattern. pgrep
// exits 1 for "no matches", which is an empty answer, not a failure.
func (p PS) Find(ctx context.Context, pattern string) ([]int, error) {
	pids, err := remote.Run(ctx, p.s, "pgrep", []string{"-f", pattern},
		func(stdout string) ([]int, error) {
			var out []int
			for _, line := range strings.Fields(stdout) {
				pid, convErr := strconv.Atoi(line)
				if convErr != nil {
					return nil, convErr
				}
				out = append(out, pid)
			}
			return out, nil
		})
	if err != nil {
		if r, ok := errors.ResultOf(err); ok && r.ExitCode == 1 {
			return nil, nil
		}
		return nil, err
	}
	return pids, nil
}

// Kill sends a signal (default TERM) to one pid.
func (p PS) Kill(ctx context.Context, pid int, signal string) error {
	args := []string{}
	if signal != "" {
		args = append(args, "-s", signal)
	}
	args = append(args, strconv.Itoa(pid))
	_, err := p.s.Do(ctx, "kill", args...)
	return err
}

// Memory returns the host memory figures from free -b, all in bytes.
func (p PS) Memory(ctx context.Context) (records.MemoryUsage, error) {
	return remote.Run(ctx, p.s, "free", []string{"-b"}, parsers.ParseFreeBytes)
}

// Meminfo returns the kernel's detailed memory accounting from
// /proc/meminfo. Memory gives the same picture in free's summary form.
func (p PS) Meminfo(ctx context.Context) (records.Meminfo, error) {
	return remote.Run(ctx, p.s, "cat", []string{"/proc/meminfo"}, parsers.ParseMeminfo)
}

// CPU returns the cumulative jiffy counters and core count from
// /proc/stat. The percentages cover the whole uptime; sample twice and
// diff for a current rate.
func (p PS) CPU(ctx context.Context) (records.CPUTimes, error) {
	return remote.Run(ctx, p.s, "cat", []string{"/proc/stat"}, parsers.ParseProcStat)
}
