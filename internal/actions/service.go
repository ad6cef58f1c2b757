package actions

import (
	"context"
	"strconv"
	"strings"

	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Service is the systemd unit command family.
type Service struct {
	s *remote.Session
}

// statusProperties limits systemctl show to the fields the status
// record carries.
const statusProperties = "Id,LoadState,ActiveState,SubState,UnitFileState,MainPID,MemoryCurrent,ActiveEnterTimestamp"

// unitName appends .service to bare names; names with an explicit unit
// suffix pass through.
func unitName(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".service"
}

// Status returns one unit's state, pid, and memory figures.
func (v Service) Status(ctx context.Context, name string) (records.ServiceStatus, error) {
	return remote.Run(ctx, v.s, "systemctl",
		[]string{"show", unitName(name), "--property=" + statusProperties},
		parsers.ParseSystemctlShow)
}

// List returns every service unit, including inactive ones.
func (v Service) List(ctx context.Context) (records.ServiceUnitList, error) {
	return remote.Run(ctx, v.s, "systemctl",
		[]string{"list-units", "--type=service", "--all", "--no-legend", "--plain"},
		parsers.ParseServiceUnits)
}

// Logs returns the last n journal entries for one unit.
func (v Service) Logs(ctx context.Context, name string, n int) (records.ServiceLogList, error) {
	if n <= 0 {
		n = 50
	}
	return remote.Run(ctx, v.s, "journalctl",
		[]string{"-u", unitName(name), "-n", strconv.Itoa(n), "-o", "short-iso", "--no-pager"},
		parsers.ParseJournal(strings.TrimSuffix(unitName(name), ".service")))
}

// Start starts a unit.
func (v Service) Start(ctx context.Context, name string) error {
	_, err := v.s.Do(ctx, "systemctl", "start", unitName(name))
	return err
}

// Stop stops a unit.
func (v Service) Stop(ctx context.Context, name string) error {
	_, err := v.s.Do(ctx, "systemctl", "stop", unitName(name))
	return err
}

// Restart restarts a unit.
func (v Service) Restart(ctx context.Context, name string) error {
	_, err := v.s.Do(ctx, "systemctl", "restart", unitName(name))
	return err
}

// Enable enables a unit at boot.
func (v Service) Enable(ctx context.Context, name string) error {
	_, err := v.s.Do(ctx, "systemctl", "enable", unitName(name))
	return err
}

// Disable disables a unit at boot.
func (v Service) Disable(ctx context.Context, name string) error {
	_, err := v.s.Do(ctx, "systemctl", "disable", unitName(name))
	return err
}
