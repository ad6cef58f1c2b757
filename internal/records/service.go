package records

import "time"

// ServiceStatus is assembled from systemctl show <unit> with an explicit
// property list. MainPID is nil when the unit has no main process;
// MemoryBytes is nil when accounting is off.
type ServiceStatus struct {
	Name        string
	LoadState   string // "loaded", "not-found", "masked"
	ActiveState string // "active", "inactive", "failed"
	SubState    string // "running", "dead", "exited", ...
	Enabled     bool
	MainPID     *int
	MemoryBytes *int64
	ActiveSince *time.Time
}

// ServiceUnit is one row of systemctl list-units --type=service.
type ServiceUnit struct {
	Name        string
	LoadState   string
	ActiveState string
	SubState    string
	Description string
}

// ServiceUnitList preserves systemctl output order.
type ServiceUnitList struct {
	Units []ServiceUnit
	Count int
}

// ServiceLogEntry is one journal line from journalctl -o short-iso.
type ServiceLogEntry struct {
	Timestamp time.Time
	Hostname  string
	Unit      string
	Message   string
}

// ServiceLogList preserves journal order (oldest first as emitted).
type ServiceLogList struct {
	Service string
	Entries []ServiceLogEntry
	Count   int
}
