package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// parseInt64 parses a decimal field, reporting which field failed so
// parse errors point at the offending column.
func parseInt64(field, name string) (int64, error) {
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", name, field, err)
	}
	return v, nil
}

func parseInt(field, name string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", name, field, err)
	}
	return v, nil
}

func parseFloat(field, name string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q: %w", name, field, err)
	}
	return v, nil
}

// parsePercent parses a field like "42%" into 42.0.
func parsePercent(field, name string) (float64, error) {
	trimmed := strings.TrimSuffix(field, "%")
	if trimmed == field {
		return 0, fmt.Errorf("%s %q is missing the %% suffix", name, field)
	}
	if trimmed == "-" {
		return 0, nil
	}
	return parseFloat(trimmed, name)
}

// humanSize renders a byte count the way df -h does, for the Human*
// companion fields. The raw byte count stays authoritative.
func humanSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%dB", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	value := float64(bytes) / float64(div)
	suffix := "KMGTPE"[exp : exp+1]
	if value >= 10 {
		return fmt.Sprintf("%.0f%s", value, suffix)
	}
	return fmt.Sprintf("%.1f%s", value, suffix)
}

// nonEmptyLines splits stdout into trimmed-right lines, dropping fully
// blank ones while preserving order.
func nonEmptyLines(stdout string) []string {
	var lines []string
	for _, line := range strings.Split(stdout, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}

// optional returns nil for empty strings, a pointer otherwise. Used for
// fields where the tool prints nothing to mean "not reported".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
