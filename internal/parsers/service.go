package parsers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("systemctl_show", untyped(ParseSystemctlShow))
	register("systemctl_units", untyped(ParseServiceUnits))
	register("journalctl", untyped(ParseJournal("")))
}

// systemdTimestampLayout matches ActiveEnterTimestamp values like
// "Mon 2026-08-24 10:00:00 UTC".
const systemdTimestampLayout = "Mon 2006-01-02 15:04:05 MST"

// ParseSystemctlShow parses systemctl show <unit> --property=... output:
// one Key=Value pair per line. MainPID=0 means no main process and maps
// to nil; MemoryCurrent is nil when accounting is off ("[not set]" or
// the unset sentinel).
func ParseSystemctlShow(stdout string) (records.ServiceStatus, error) {
	props := make(map[string]string)
	for _, line := range nonEmptyLines(stdout) {
		key, value, found := strings.Cut(line, "=")
		if !found {
			return records.ServiceStatus{}, fmt.Errorf("malformed systemctl show line: %q", line)
		}
		props[key] = value
	}

	name, ok := props["Id"]
	if !ok || name == "" {
		return records.ServiceStatus{}, fmt.Errorf("systemctl show output missing Id")
	}
	for _, required := range []string{"LoadState", "ActiveState", "SubState"} {
		if props[required] == "" {
			return records.ServiceStatus{}, fmt.Errorf("systemctl show output missing %s", required)
		}
	}

	status := records.ServiceStatus{
		Name:        strings.TrimSuffix(name, ".service"),
		LoadState:   props["LoadState"],
		ActiveState: props["ActiveState"],
		SubState:    props["SubState"],
		Enabled:     props["UnitFileState"] == "enabled",
	}

	if pidStr, ok := props["MainPID"]; ok && pidStr != "" && pidStr != "0" {
		pid, err := parseInt(pidStr, "MainPID")
		if err != nil {
			return records.ServiceStatus{}, err
		}
		status.MainPID = &pid
	}

	if memStr, ok := props["MemoryCurrent"]; ok {
		// 2^64-1 is systemd's "unset" sentinel and overflows int64
		// anyway; both spellings mean accounting is off.
		if memStr != "" && memStr != "[not set]" && memStr != "18446744073709551615" {
			mem, err := parseInt64(memStr, "MemoryCurrent")
			if err != nil {
				return records.ServiceStatus{}, err
			}
			status.MemoryBytes = &mem
		}
	}

	if tsStr, ok := props["ActiveEnterTimestamp"]; ok && tsStr != "" && tsStr != "n/a" {
		ts, err := time.Parse(systemdTimestampLayout, tsStr)
		if err != nil {
			return records.ServiceStatus{}, fmt.Errorf("failed to parse ActiveEnterTimestamp %q: %w", tsStr, err)
		}
		status.ActiveSince = &ts
	}

	return status, nil
}

// ParseServiceUnits parses
//
//	systemctl list-units --type=service --all --no-legend --plain
//
// rows: unit, load, active, sub, then the free-text description.
func ParseServiceUnits(stdout string) (records.ServiceUnitList, error) {
	var units []records.ServiceUnit

	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return records.ServiceUnitList{}, fmt.Errorf("short systemctl line: %q", line)
		}

		description := ""
		if len(fields) > 4 {
			description = strings.Join(fields[4:], " ")
		}

		units = append(units, records.ServiceUnit{
			Name:        strings.TrimSuffix(fields[0], ".service"),
			LoadState:   fields[1],
			ActiveState: fields[2],
			SubState:    fields[3],
			Description: description,
		})
	}

	return records.ServiceUnitList{Units: units, Count: len(units)}, nil
}

// journalTimeLayout matches journalctl -o short-iso timestamps.
const journalTimeLayout = "2006-01-02T15:04:05-0700"

// ParseJournal returns a parser for
//
//	journalctl -u <service> -n <N> -o short-iso --no-pager
//
// bound to the service it was fetched for. "-- No entries --" yields an
// empty list; boot markers are skipped.
func ParseJournal(service string) func(string) (records.ServiceLogList, error) {
	return func(stdout string) (records.ServiceLogList, error) {
		var entries []records.ServiceLogEntry

		for _, line := range nonEmptyLines(stdout) {
			if strings.HasPrefix(line, "--") {
				// "-- No entries --" or a boot boundary marker.
				continue
			}

			fields := strings.Fields(line)
			if len(fields) < 4 {
				return records.ServiceLogList{}, fmt.Errorf("short journal line: %q", line)
			}

			ts, err := time.Parse(journalTimeLayout, fields[0])
			if err != nil {
				return records.ServiceLogList{}, fmt.Errorf("failed to parse journal timestamp in %q: %w", line, err)
			}

			unit := strings.TrimSuffix(fields[2], ":")
			if idx := strings.Index(unit, "["); idx != -1 {
				unit = unit[:idx]
			}

			entries = append(entries, records.ServiceLogEntry{
				Timestamp: ts,
				Hostname:  fields[1],
				Unit:      unit,
				Message:   strings.Join(fields[3:], " "),
			})
		}

		return records.ServiceLogList{
			Service: service,
			Entries: entries,
			Count:   len(entries),
		}, nil
	}
}
