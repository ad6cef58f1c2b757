package records

import "time"

// FileInfo describes one file or directory as reported by stat.
// Size is in bytes.
type FileInfo struct {
	Path     string
	Size     int64
	Mode     string // symbolic, e.g. "-rw-r--r--"
	Kind     string // "file", "dir", "symlink", "char_device", "block_device", "socket", "fifo"
	Owner    string
	Group    string
	Modified time.Time
	Accessed time.Time
	IsFile   bool
	IsDir    bool
	IsLink   bool
}

// DirectoryEntry is one row of a long directory listing.
// Size is in bytes as printed by ls.
type DirectoryEntry struct {
	Name        string
	Kind        string // "file", "dir", "symlink", ...
	Size        int64
	Owner       string
	Group       string
	Permissions string // raw mode column, e.g. "drwxr-xr-x"
	Links       int
	Modified    time.Time
	LinkTarget  *string // symlink destination, nil for non-links
}

// DirectoryListing is the parsed output of ls -l for one directory.
// Entries preserve listing order; Count always equals len(Entries).
type DirectoryListing struct {
	Path    string
	Entries []DirectoryEntry
	Count   int
}

// DiskUsage is one filesystem row from df. All sizes are raw bytes
// (df is invoked with a 1-byte block size); the Human* fields carry the
// human-readable strings and are never substituted for the byte counts.
type DiskUsage struct {
	Filesystem     string
	MountPoint     string
	Total          int64
	Used           int64
	Available      int64
	UsedPercent    float64
	HumanTotal     string
	HumanUsed      string
	HumanAvailable string
}

// DiskUsageList is the full df table in row order.
type DiskUsageList struct {
	Filesystems []DiskUsage
	Count       int
}

// DirSize is the du summary for one path. Bytes is the raw byte count
// from du -sb.
type DirSize struct {
	Path  string
	Bytes int64
}

// FindResult lists paths matched by find, in output order.
type FindResult struct {
	Root    string
	Matches []string
	Count   int
}
