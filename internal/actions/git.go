package actions

import (
	"context"
	"strconv"

	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
	"github.com/rileyhilliard/rmac/internal/state"
)

// Git is the repository command family. Every method takes the repo
// directory explicitly (git -C) instead of depending on the session
// cwd, so inspecting several repos doesn't require cd round trips.
type Git struct {
	s *remote.Session
}

// Status returns branch, tracking, and per-file state.
func (g Git) Status(ctx context.Context, dir string) (records.RepoStatus, error) {
	p := state.Resolve(dir, g.s.State.Cwd())
	return remote.Run(ctx, g.s, "git",
		[]string{"-C", p, "status", "--porcelain", "--branch"},
		parsers.ParseGitStatus)
}

// Log returns the most recent n commits, newest first.
func (g Git) Log(ctx context.Context, dir string, n int) (records.CommitList, error) {
	if n <= 0 {
		n = 20
	}
	p := state.Resolve(dir, g.s.State.Cwd())
	return remote.Run(ctx, g.s, "git",
		[]string{"-C", p, "log", "-n", strconv.Itoa(n), "--pretty=format:%H%x09%an%x09%aI%x09%s"},
		parsers.ParseGitLog)
}

// Branches returns the local branches with their head commits.
func (g Git) Branches(ctx context.Context, dir string) (records.BranchList, error) {
	p := state.Resolve(dir, g.s.State.Cwd())
	return remote.Run(ctx, g.s, "git",
		[]string{"-C", p, "branch", "--list", "-v", "--no-abbrev"},
		parsers.ParseGitBranches)
}
