package records

import "time"

// FileStatus is one entry of git status --porcelain: the two status
// letters plus the path. OrigPath is set only for renames.
type FileStatus struct {
	Staged   byte // index column, ' ' when clean
	Unstaged byte // worktree column, ' ' when clean
	Path     string
	OrigPath *string
}

// RepoStatus is the parsed git status --porcelain --branch output.
// Upstream, Ahead and Behind are nil when the branch has no upstream.
type RepoStatus struct {
	Branch   string
	Upstream *string
	Ahead    *int
	Behind   *int
	Files    []FileStatus
	Count    int
}

// Commit is one entry of git log --pretty=format:%H%x09%an%x09%aI%x09%s.
type Commit struct {
	Hash    string
	Author  string
	Date    time.Time
	Subject string
}

// CommitList preserves log order (newest first).
type CommitList struct {
	Commits []Commit
	Count   int
}

// Branch is one row of git branch --list -v.
type Branch struct {
	Name    string
	Current bool
	Hash    string
	Subject string
}

// BranchList preserves git branch output order.
type BranchList struct {
	Branches []Branch
	Count    int
}
