package parsers

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("git_status", untyped(ParseGitStatus))
	register("git_log", untyped(ParseGitLog))
	register("git_branch", untyped(ParseGitBranches))
}

// branchHeaderRe matches the "## branch...upstream [ahead N, behind M]"
// header of git status --porcelain --branch.
var branchHeaderRe = regexp.MustCompile(`^## (\S+?)(?:\.\.\.(\S+))?(?: \[(.+)\])?$`)

// ParseGitStatus parses git status --porcelain --branch output. The
// Count covers the file entries only; upstream/ahead/behind stay nil
// when the branch has no upstream.
func ParseGitStatus(stdout string) (records.RepoStatus, error) {
	lines := strings.Split(stdout, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "## ") {
		return records.RepoStatus{}, fmt.Errorf("missing branch header in git status output")
	}

	m := branchHeaderRe.FindStringSubmatch(strings.TrimRight(lines[0], "\r"))
	if m == nil {
		return records.RepoStatus{}, fmt.Errorf("malformed branch header: %q", lines[0])
	}

	status := records.RepoStatus{Branch: m[1]}
	if m[2] != "" {
		status.Upstream = &m[2]
	}
	if m[3] != "" {
		for _, part := range strings.Split(m[3], ", ") {
			word, numStr, found := strings.Cut(part, " ")
			if !found {
				return records.RepoStatus{}, fmt.Errorf("malformed ahead/behind field: %q", m[3])
			}
			n, err := parseInt(numStr, "ahead/behind count")
			if err != nil {
				return records.RepoStatus{}, err
			}
			switch word {
			case "ahead":
				status.Ahead = &n
			case "behind":
				status.Behind = &n
			default:
				return records.RepoStatus{}, fmt.Errorf("unknown tracking word %q", word)
			}
		}
	}

	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if len(line) < 4 {
			return records.RepoStatus{}, fmt.Errorf("short status line: %q", line)
		}

		entry := records.FileStatus{
			Staged:   line[0],
			Unstaged: line[1],
			Path:     line[3:],
		}
		// Renames carry "orig -> new".
		if entry.Staged == 'R' || entry.Staged == 'C' {
			if orig, newPath, found := strings.Cut(entry.Path, " -> "); found {
				entry.OrigPath = &orig
				entry.Path = newPath
			}
		}
		status.Files = append(status.Files, entry)
	}

	status.Count = len(status.Files)
	return status, nil
}

// ParseGitLog parses git log --pretty=format:%H%x09%an%x09%aI%x09%s
// output: hash, author, ISO-8601 date, subject, tab-separated.
func ParseGitLog(stdout string) (records.CommitList, error) {
	var commits []records.Commit

	for _, line := range nonEmptyLines(stdout) {
		parts := strings.SplitN(line, "\t", 4)
		if len(parts) != 4 {
			return records.CommitList{}, fmt.Errorf("expected 4 log fields, got %d in %q", len(parts), line)
		}

		date, err := time.Parse(time.RFC3339, parts[2])
		if err != nil {
			return records.CommitList{}, fmt.Errorf("failed to parse commit date %q: %w", parts[2], err)
		}

		commits = append(commits, records.Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    date,
			Subject: parts[3],
		})
	}

	return records.CommitList{Commits: commits, Count: len(commits)}, nil
}

// ParseGitBranches parses git branch --list -v --no-abbrev output:
//
//	* main  abc1234... subject
//	  dev   def5678... subject
func ParseGitBranches(stdout string) (records.BranchList, error) {
	var branches []records.Branch

	for _, line := range nonEmptyLines(stdout) {
		current := strings.HasPrefix(line, "* ")
		body := strings.TrimPrefix(strings.TrimPrefix(line, "* "), "  ")

		fields := strings.Fields(body)
		if len(fields) < 2 {
			return records.BranchList{}, fmt.Errorf("short branch line: %q", line)
		}

		subject := ""
		if len(fields) > 2 {
			subject = strings.Join(fields[2:], " ")
		}

		branches = append(branches, records.Branch{
			Name:    fields[0],
			Current: current,
			Hash:    fields[1],
			Subject: subject,
		})
	}

	return records.BranchList{Branches: branches, Count: len(branches)}, nil
}
