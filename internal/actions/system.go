package actions

import (
	"context"
	"strings"

	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Sys is the system identity command family.
type Sys struct {
	s *remote.Session
}

// Uname returns kernel and machine identity (uname -snrvm).
func (s Sys) Uname(ctx context.Context) (records.UnameInfo, error) {
	return remote.Run(ctx, s.s, "uname", []string{"-snrvm"}, parsers.ParseUname)
}

// Uptime returns host uptime and aggregate idle time.
func (s Sys) Uptime(ctx context.Context) (records.UptimeInfo, error) {
	return remote.Run(ctx, s.s, "cat", []string{"/proc/uptime"}, parsers.ParseProcUptime)
}

// OSRelease returns the distribution identity from /etc/os-release.
func (s Sys) OSRelease(ctx context.Context) (records.OSRelease, error) {
	return remote.Run(ctx, s.s, "cat", []string{"/etc/os-release"}, parsers.ParseOSRelease)
}

// LoadAverage returns the three load samples from /proc/loadavg.
func (s Sys) LoadAverage(ctx context.Context) (records.LoadAverage, error) {
	return remote.Run(ctx, s.s, "cat", []string{"/proc/loadavg"}, parsers.ParseLoadAvg)
}

// Hostname returns the host's own name.
func (s Sys) Hostname(ctx context.Context) (string, error) {
	result, err := s.s.Do(ctx, "hostname")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// Who returns the logged-in users in who's row order.
func (s Sys) Who(ctx context.Context) (records.LoggedInUserList, error) {
	return remote.Run(ctx, s.s, "who", nil, parsers.ParseWho)
}
