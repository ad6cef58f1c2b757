package parsers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("uname", untyped(ParseUname))
	register("proc_uptime", untyped(ParseProcUptime))
	register("os_release", untyped(ParseOSRelease))
	register("proc_loadavg", untyped(ParseLoadAvg))
	register("who", untyped(ParseWho))
}

// ParseUname parses uname -snrvm output. uname prints the fields in a
// fixed order regardless of flag order: sysname, nodename, release,
// version, machine. Only the version field can contain spaces, so it is
// everything between the release and the trailing machine token.
func ParseUname(stdout string) (records.UnameInfo, error) {
	fields := strings.Fields(stdout)
	if len(fields) < 5 {
		return records.UnameInfo{}, fmt.Errorf("expected at least 5 uname fields, got %d in %q",
			len(fields), strings.TrimSpace(stdout))
	}

	return records.UnameInfo{
		Sysname:  fields[0],
		Nodename: fields[1],
		Release:  fields[2],
		Version:  strings.Join(fields[3:len(fields)-1], " "),
		Machine:  fields[len(fields)-1],
	}, nil
}

// ParseProcUptime parses /proc/uptime: uptime seconds and aggregate
// idle seconds.
func ParseProcUptime(stdout string) (records.UptimeInfo, error) {
	fields := strings.Fields(stdout)
	if len(fields) < 2 {
		return records.UptimeInfo{}, fmt.Errorf("expected 2 /proc/uptime fields, got %q", strings.TrimSpace(stdout))
	}

	up, err := parseFloat(fields[0], "uptime")
	if err != nil {
		return records.UptimeInfo{}, err
	}
	idle, err := parseFloat(fields[1], "idle time")
	if err != nil {
		return records.UptimeInfo{}, err
	}

	return records.UptimeInfo{
		Uptime: time.Duration(up * float64(time.Second)),
		Idle:   time.Duration(idle * float64(time.Second)),
	}, nil
}

// ParseOSRelease parses /etc/os-release KEY=value lines. NAME and ID
// are required; the remaining well-known keys are optional and stay nil
// when the file omits them.
func ParseOSRelease(stdout string) (records.OSRelease, error) {
	values := make(map[string]string)

	for _, line := range nonEmptyLines(stdout) {
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			return records.OSRelease{}, fmt.Errorf("malformed os-release line: %q", line)
		}
		values[key] = strings.Trim(value, `"'`)
	}

	name, hasName := values["NAME"]
	id, hasID := values["ID"]
	if !hasName || !hasID {
		return records.OSRelease{}, fmt.Errorf("os-release output missing NAME or ID")
	}

	get := func(key string) *string {
		if v, ok := values[key]; ok {
			return &v
		}
		return nil
	}

	return records.OSRelease{
		Name:       name,
		ID:         id,
		VersionID:  get("VERSION_ID"),
		Version:    get("VERSION"),
		PrettyName: get("PRETTY_NAME"),
		IDLike:     get("ID_LIKE"),
		HomeURL:    get("HOME_URL"),
	}, nil
}

// ParseLoadAvg parses /proc/loadavg: three samples, the runnable/total
// entity pair, and the most recent pid.
func ParseLoadAvg(stdout string) (records.LoadAverage, error) {
	fields := strings.Fields(stdout)
	if len(fields) < 5 {
		return records.LoadAverage{}, fmt.Errorf("expected 5 /proc/loadavg fields, got %q", strings.TrimSpace(stdout))
	}

	samples := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := parseFloat(fields[i], "load sample")
		if err != nil {
			return records.LoadAverage{}, err
		}
		samples[i] = v
	}

	runningStr, totalStr, found := strings.Cut(fields[3], "/")
	if !found {
		return records.LoadAverage{}, fmt.Errorf("malformed entity field %q", fields[3])
	}
	running, err := parseInt(runningStr, "running entities")
	if err != nil {
		return records.LoadAverage{}, err
	}
	total, err := parseInt(totalStr, "total entities")
	if err != nil {
		return records.LoadAverage{}, err
	}
	lastPID, err := parseInt(fields[4], "last pid")
	if err != nil {
		return records.LoadAverage{}, err
	}

	return records.LoadAverage{
		One:     samples[0],
		Five:    samples[1],
		Fifteen: samples[2],
		Running: running,
		Total:   total,
		LastPID: lastPID,
	}, nil
}

// whoTimeLayout matches who's login time column.
const whoTimeLayout = "2006-01-02 15:04"

// ParseWho parses who output: user, tty, login date+time, optional
// "(host)". Rows keep who order.
func ParseWho(stdout string) (records.LoggedInUserList, error) {
	var users []records.LoggedInUser

	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return records.LoggedInUserList{}, fmt.Errorf("short who line: %q", line)
		}

		loginTime, err := time.Parse(whoTimeLayout, fields[2]+" "+fields[3])
		if err != nil {
			return records.LoggedInUserList{}, fmt.Errorf("failed to parse login time in %q: %w", line, err)
		}

		user := records.LoggedInUser{
			Username:  fields[0],
			TTY:       fields[1],
			LoginTime: loginTime,
		}
		if len(fields) >= 5 && strings.HasPrefix(fields[4], "(") {
			host := strings.Trim(fields[4], "()")
			user.Host = &host
		}

		users = append(users, user)
	}

	return records.LoggedInUserList{Users: users, Count: len(users)}, nil
}
