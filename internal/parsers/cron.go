package parsers

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("crontab", untyped(ParseCrontab("")))
}

// cronShortcuts are the @-prefixed schedule shortcuts crontab accepts.
var cronShortcuts = map[string]bool{
	"@reboot":   true,
	"@yearly":   true,
	"@annually": true,
	"@monthly":  true,
	"@weekly":   true,
	"@daily":    true,
	"@midnight": true,
	"@hourly":   true,
}

// splitCronFields splits off the first n fields of a crontab line.
// Crontab separates fields with runs of spaces or tabs; the remainder
// (the command) keeps its internal spacing.
func splitCronFields(line string, n int) ([]string, string) {
	fields := make([]string, 0, n)
	rest := strings.TrimLeft(line, " \t")
	for len(fields) < n && rest != "" {
		i := strings.IndexAny(rest, " \t")
		if i < 0 {
			fields = append(fields, rest)
			rest = ""
			break
		}
		fields = append(fields, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t")
	}
	return fields, strings.TrimRight(rest, " \t")
}

// ParseCrontab returns a parser for crontab -l output bound to the user
// it was fetched for. Comments, blank lines, and VAR=value environment
// lines are skipped; anything else that is not a valid job line is a
// parse error.
func ParseCrontab(user string) func(string) (records.CronTable, error) {
	return func(stdout string) (records.CronTable, error) {
		var jobs []records.CronJob

		for _, line := range nonEmptyLines(stdout) {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "#") {
				continue
			}

			if strings.HasPrefix(trimmed, "@") {
				fields, command := splitCronFields(trimmed, 1)
				if command == "" || !cronShortcuts[fields[0]] {
					return records.CronTable{}, fmt.Errorf("malformed cron shortcut line: %q", line)
				}
				jobs = append(jobs, records.CronJob{
					Shortcut: &fields[0],
					Command:  command,
				})
				continue
			}

			fields, command := splitCronFields(trimmed, 5)
			// Environment assignments like MAILTO=ops@example.com are
			// legal crontab content but not jobs.
			if strings.Contains(fields[0], "=") {
				continue
			}
			if len(fields) < 5 || command == "" {
				return records.CronTable{}, fmt.Errorf("short cron line: %q", line)
			}

			jobs = append(jobs, records.CronJob{
				Minute:     &fields[0],
				Hour:       &fields[1],
				DayOfMonth: &fields[2],
				Month:      &fields[3],
				DayOfWeek:  &fields[4],
				Command:    command,
			})
		}

		return records.CronTable{User: user, Jobs: jobs, Count: len(jobs)}, nil
	}
}
