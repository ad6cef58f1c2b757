package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rmac/internal/records"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	okStyle     = lipgloss.NewStyle().Foreground(ColorSuccess)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
)

// RenderTable renders headers and rows as aligned columns. Column
// widths come from the widest cell; styling is applied after width
// calculation so ANSI codes don't skew alignment.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(padRight(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				cell = padRight(cell, widths[i])
			}
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderListing renders a directory listing in ls order.
func RenderListing(l records.DirectoryListing) string {
	rows := make([][]string, 0, len(l.Entries))
	for _, e := range l.Entries {
		name := e.Name
		if e.Kind == "dir" {
			name = okStyle.Render(name + "/")
		} else if e.LinkTarget != nil {
			name = name + mutedStyle.Render(" -> "+*e.LinkTarget)
		}
		rows = append(rows, []string{
			e.Permissions,
			e.Owner,
			e.Group,
			humanBytes(e.Size),
			e.Modified.Format("2006-01-02 15:04"),
			name,
		})
	}

	header := mutedStyle.Render(fmt.Sprintf("%s (%d entries)", l.Path, l.Count))
	return header + "\n" + RenderTable(
		[]string{"MODE", "OWNER", "GROUP", "SIZE", "MODIFIED", "NAME"}, rows)
}

// RenderDiskUsage renders df output with a colored usage column: red
// at 90%, yellow at 75%.
func RenderDiskUsage(d records.DiskUsageList) string {
	rows := make([][]string, 0, len(d.Filesystems))
	for _, fs := range d.Filesystems {
		pct := fmt.Sprintf("%.0f%%", fs.UsedPercent)
		switch {
		case fs.UsedPercent >= 90:
			pct = errorStyle.Render(pct)
		case fs.UsedPercent >= 75:
			pct = warnStyle.Render(pct)
		}
		rows = append(rows, []string{
			fs.Filesystem, fs.HumanTotal, fs.HumanUsed, fs.HumanAvailable, pct, fs.MountPoint,
		})
	}
	return RenderTable([]string{"FILESYSTEM", "SIZE", "USED", "AVAIL", "USE%", "MOUNTED ON"}, rows)
}

// RenderProcesses renders a process table in ps order.
func RenderProcesses(p records.ProcessList) string {
	rows := make([][]string, 0, len(p.Processes))
	for _, proc := range p.Processes {
		rows = append(rows, []string{
			strconv.Itoa(proc.PID),
			proc.User,
			fmt.Sprintf("%.1f", proc.CPUPercent),
			fmt.Sprintf("%.1f", proc.MemPercent),
			humanBytes(proc.RSS),
			proc.State,
			truncate(proc.Command, 60),
		})
	}
	return RenderTable([]string{"PID", "USER", "%CPU", "%MEM", "RSS", "STAT", "COMMAND"}, rows)
}

// RenderServices renders service units with colored activity markers.
func RenderServices(u records.ServiceUnitList) string {
	rows := make([][]string, 0, len(u.Units))
	for _, unit := range u.Units {
		marker := mutedStyle.Render(SymbolPending)
		switch unit.ActiveState {
		case "active":
			marker = okStyle.Render(SymbolSuccess)
		case "failed":
			marker = errorStyle.Render(SymbolFail)
		}
		rows = append(rows, []string{
			marker, unit.Name, unit.ActiveState, unit.SubState, truncate(unit.Description, 50),
		})
	}
	return RenderTable([]string{"", "UNIT", "ACTIVE", "SUB", "DESCRIPTION"}, rows)
}

// RenderHostInfo renders the info command summary block.
func RenderHostInfo(uname records.UnameInfo, os records.OSRelease, up records.UptimeInfo,
	load records.LoadAverage, mem records.MemoryUsage) string {

	osName := os.Name
	if os.PrettyName != nil {
		osName = *os.PrettyName
	}

	lines := []struct{ label, value string }{
		{"Host", uname.Nodename},
		{"OS", osName},
		{"Kernel", uname.Sysname + " " + uname.Release + " (" + uname.Machine + ")"},
		{"Uptime", formatUptime(up.Uptime)},
		{"Load", fmt.Sprintf("%.2f %.2f %.2f", load.One, load.Five, load.Fifteen)},
		{"Memory", fmt.Sprintf("%s / %s (%.0f%%)",
			humanBytes(mem.Used), humanBytes(mem.Total), mem.UsedPercent)},
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(headerStyle.Render(padRight(line.label, 8)))
		b.WriteString(line.value)
		b.WriteString("\n")
	}
	return b.String()
}

// formatUptime renders a duration as "12d 3h 4m".
func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// humanBytes renders a byte count with a binary-ish short suffix.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + "B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(n)/float64(div), "KMGTPE"[exp])
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// padRight pads a string to the specified width, accounting for ANSI
// codes in the visible length.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
