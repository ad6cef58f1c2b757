package records

import "time"

// UnameInfo is the five standard uname fields, fetched in one call as
// uname -s -n -r -v -m.
type UnameInfo struct {
	Sysname  string
	Nodename string
	Release  string
	Version  string
	Machine  string
}

// UptimeInfo comes from /proc/uptime. Uptime is the first field; Idle is
// the aggregate idle time across all cores.
type UptimeInfo struct {
	Uptime time.Duration
	Idle   time.Duration
}

// OSRelease holds the well-known keys of /etc/os-release. Keys the file
// does not define are nil, never empty strings.
type OSRelease struct {
	Name       string
	ID         string
	VersionID  *string
	Version    *string
	PrettyName *string
	IDLike     *string
	HomeURL    *string
}

// LoadAverage is /proc/loadavg: three load samples plus the runnable and
// total entity counts from the fourth field.
type LoadAverage struct {
	One       float64
	Five      float64
	Fifteen   float64
	Running   int
	Total     int
	LastPID   int
}

// LoggedInUser is one row of who.
type LoggedInUser struct {
	Username  string
	TTY       string
	LoginTime time.Time
	Host      *string // the "(host)" column, nil for local logins
}

// LoggedInUserList preserves who output order.
type LoggedInUserList struct {
	Users []LoggedInUser
	Count int
}
