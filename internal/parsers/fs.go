package parsers

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("ls", untyped(ParseLsLong("")))
	register("stat", untyped(ParseStat))
	register("df", untyped(ParseDf))
	register("du", untyped(ParseDuSummary))
	register("find", untyped(ParseFind("")))
}

// kindFromModeChar maps the first character of a mode string to an
// entry kind.
var kindFromModeChar = map[byte]string{
	'-': "file",
	'd': "dir",
	'l': "symlink",
	'c': "char_device",
	'b': "block_device",
	's': "socket",
	'p': "fifo",
}

// lsTimeLayout matches --time-style=full-iso output.
const lsTimeLayout = "2006-01-02 15:04:05.000000000 -0700"

// ParseLsLong returns a parser for ls -lA --time-style=full-iso output.
// Entries keep listing order and Count always equals len(Entries). The
// "total N" header is skipped; any other unrecognized line is a parse
// error rather than a silently dropped row.
func ParseLsLong(path string) func(string) (records.DirectoryListing, error) {
	return func(stdout string) (records.DirectoryListing, error) {
		var entries []records.DirectoryEntry

		for _, line := range nonEmptyLines(stdout) {
			if strings.HasPrefix(line, "total ") {
				continue
			}

			// perms links owner group size date time tz name...
			fields := strings.Fields(line)
			if len(fields) < 9 {
				return records.DirectoryListing{}, fmt.Errorf("short ls line: %q", line)
			}

			perms := fields[0]
			kind, ok := kindFromModeChar[perms[0]]
			if !ok {
				return records.DirectoryListing{}, fmt.Errorf("unknown file type %q in %q", perms[0], line)
			}

			links, err := parseInt(fields[1], "link count")
			if err != nil {
				return records.DirectoryListing{}, err
			}
			size, err := parseInt64(fields[4], "size")
			if err != nil {
				return records.DirectoryListing{}, err
			}

			modified, err := time.Parse(lsTimeLayout, strings.Join(fields[5:8], " "))
			if err != nil {
				return records.DirectoryListing{}, fmt.Errorf("failed to parse timestamp in %q: %w", line, err)
			}

			name := strings.Join(fields[8:], " ")
			var linkTarget *string
			if kind == "symlink" {
				if idx := strings.Index(name, " -> "); idx != -1 {
					target := name[idx+4:]
					linkTarget = &target
					name = name[:idx]
				}
			}

			entries = append(entries, records.DirectoryEntry{
				Name:        name,
				Kind:        kind,
				Size:        size,
				Owner:       fields[2],
				Group:       fields[3],
				Permissions: perms,
				Links:       links,
				Modified:    modified,
				LinkTarget:  linkTarget,
			})
		}

		return records.DirectoryListing{
			Path:    path,
			Entries: entries,
			Count:   len(entries),
		}, nil
	}
}

// statKinds maps stat's %F descriptions to entry kinds.
var statKinds = map[string]string{
	"regular file":           "file",
	"regular empty file":     "file",
	"directory":              "dir",
	"symbolic link":          "symlink",
	"character special file": "char_device",
	"block special file":     "block_device",
	"socket":                 "socket",
	"fifo":                   "fifo",
}

// ParseStat parses the output of
//
//	stat --format '%n|%s|%A|%F|%U|%G|%X|%Y'
//
// %X/%Y are epoch seconds; sizes are bytes.
func ParseStat(stdout string) (records.FileInfo, error) {
	line := strings.TrimSpace(stdout)
	if line == "" {
		return records.FileInfo{}, fmt.Errorf("empty stat output")
	}

	parts := strings.Split(line, "|")
	if len(parts) != 8 {
		return records.FileInfo{}, fmt.Errorf("expected 8 stat fields, got %d in %q", len(parts), line)
	}

	size, err := parseInt64(parts[1], "size")
	if err != nil {
		return records.FileInfo{}, err
	}

	kind, ok := statKinds[parts[3]]
	if !ok {
		return records.FileInfo{}, fmt.Errorf("unknown stat file type %q", parts[3])
	}

	atime, err := parseInt64(parts[6], "access time")
	if err != nil {
		return records.FileInfo{}, err
	}
	mtime, err := parseInt64(parts[7], "modify time")
	if err != nil {
		return records.FileInfo{}, err
	}

	return records.FileInfo{
		Path:     parts[0],
		Size:     size,
		Mode:     parts[2],
		Kind:     kind,
		Owner:    parts[4],
		Group:    parts[5],
		Accessed: time.Unix(atime, 0).UTC(),
		Modified: time.Unix(mtime, 0).UTC(),
		IsFile:   kind == "file",
		IsDir:    kind == "dir",
		IsLink:   kind == "symlink",
	}, nil
}

// ParseDf parses df -B1 --output=source,size,used,avail,pcent,target.
// All sizes arrive as raw bytes because of the 1-byte block size; the
// human-readable companions are derived, never substituted.
func ParseDf(stdout string) (records.DiskUsageList, error) {
	lines := nonEmptyLines(stdout)
	if len(lines) < 1 {
		return records.DiskUsageList{}, fmt.Errorf("empty df output")
	}
	if !strings.Contains(lines[0], "Filesystem") {
		return records.DiskUsageList{}, fmt.Errorf("missing df header, got %q", lines[0])
	}

	var rows []records.DiskUsage
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return records.DiskUsageList{}, fmt.Errorf("short df line: %q", line)
		}

		total, err := parseInt64(fields[1], "total")
		if err != nil {
			return records.DiskUsageList{}, err
		}
		used, err := parseInt64(fields[2], "used")
		if err != nil {
			return records.DiskUsageList{}, err
		}
		avail, err := parseInt64(fields[3], "available")
		if err != nil {
			return records.DiskUsageList{}, err
		}
		pcent, err := parsePercent(fields[4], "use percent")
		if err != nil {
			return records.DiskUsageList{}, err
		}

		// Mount points with spaces come back as extra fields.
		mount := strings.Join(fields[5:], " ")

		rows = append(rows, records.DiskUsage{
			Filesystem:     fields[0],
			MountPoint:     mount,
			Total:          total,
			Used:           used,
			Available:      avail,
			UsedPercent:    pcent,
			HumanTotal:     humanSize(total),
			HumanUsed:      humanSize(used),
			HumanAvailable: humanSize(avail),
		})
	}

	return records.DiskUsageList{Filesystems: rows, Count: len(rows)}, nil
}

// ParseDuSummary parses du -sb output: one "<bytes>\t<path>" line.
func ParseDuSummary(stdout string) (records.DirSize, error) {
	line := strings.TrimSpace(stdout)
	if line == "" {
		return records.DirSize{}, fmt.Errorf("empty du output")
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return records.DirSize{}, fmt.Errorf("short du line: %q", line)
	}

	bytes, err := parseInt64(fields[0], "size")
	if err != nil {
		return records.DirSize{}, err
	}

	return records.DirSize{
		Path:  strings.Join(fields[1:], " "),
		Bytes: bytes,
	}, nil
}

// ParseFind returns a parser for find output: one matched path per
// line, order preserved.
func ParseFind(root string) func(string) (records.FindResult, error) {
	return func(stdout string) (records.FindResult, error) {
		matches := nonEmptyLines(stdout)
		for _, m := range matches {
			if !strings.HasPrefix(m, "/") && !strings.HasPrefix(m, ".") {
				return records.FindResult{}, fmt.Errorf("unexpected find output line: %q", m)
			}
		}
		return records.FindResult{
			Root:    root,
			Matches: matches,
			Count:   len(matches),
		}, nil
	}
}
