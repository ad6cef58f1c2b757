package actions

import (
	"context"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
	"github.com/rileyhilliard/rmac/internal/state"
)

// FS is the filesystem command family.
type FS struct {
	s *remote.Session
}

// List runs ls -lA on dir and returns its entries in listing order.
// Relative dirs resolve against the session cwd so the record carries
// an absolute path.
func (f FS) List(ctx context.Context, dir string) (records.DirectoryListing, error) {
	p := state.Resolve(dir, f.s.State.Cwd())
	return remote.Run(ctx, f.s, "ls",
		[]string{"-lA", "--time-style=full-iso", p},
		parsers.ParseLsLong(p))
}

// Stat returns file metadata for one path.
func (f FS) Stat(ctx context.Context, path string) (records.FileInfo, error) {
	p := state.Resolve(path, f.s.State.Cwd())
	return remote.Run(ctx, f.s, "stat",
		[]string{"--format", "%n|%s|%A|%F|%U|%G|%X|%Y", p},
		parsers.ParseStat)
}

// Exists reports whether a path exists. A plain "does not exist" answer
// is not an error; anything else (permission, dead channel) is.
func (f FS) Exists(ctx context.Context, path string) (bool, error) {
	p := state.Resolve(path, f.s.State.Cwd())
	_, err := f.s.Do(ctx, "test", "-e", p)
	if err == nil {
		return true, nil
	}
	if r, ok := errors.ResultOf(err); ok && r.ExitCode == 1 {
		return false, nil
	}
	return false, err
}

// DiskUsage runs df over the given mount points, or every mounted
// filesystem when none are named. Sizes are raw bytes.
func (f FS) DiskUsage(ctx context.Context, paths ...string) (records.DiskUsageList, error) {
	args := []string{"-B1", "--output=source,size,used,avail,pcent,target"}
	for _, p := range paths {
		args = append(args, state.Resolve(p, f.s.State.Cwd()))
	}
	return remote.Run(ctx, f.s, "df", args, parsers.ParseDf)
}

// DirSize returns the recursive byte size of a directory (du -sb).
func (f FS) DirSize(ctx context.Context, dir string) (records.DirSize, error) {
	p := state.Resolve(dir, f.s.State.Cwd())
	return remote.Run(ctx, f.s, "du", []string{"-sb", p}, parsers.ParseDuSummary)
}

// Find matches names under root, depth-first in find's own order.
func (f FS) Find(ctx context.Context, root, pattern string) (records.FindResult, error) {
	p := state.Resolve(root, f.s.State.Cwd())
	return remote.Run(ctx, f.s, "find",
		[]string{p, "-name", pattern},
		parsers.ParseFind(p))
}

// ReadFile returns the contents of one file as a string.
func (f FS) ReadFile(ctx context.Context, path string) (string, error) {
	p := state.Resolve(path, f.s.State.Cwd())
	result, err := f.s.Do(ctx, "cat", p)
	if err != nil {
		return "", err
	}
	return result.Stdout, nil
}

// Mkdir creates a directory. With parents set, missing ancestors are
// created and an existing directory is not an error (mkdir -p).
func (f FS) Mkdir(ctx context.Context, dir string, parents bool) error {
	args := []string{}
	if parents {
		args = append(args, "-p")
	}
	args = append(args, state.Resolve(dir, f.s.State.Cwd()))
	_, err := f.s.Do(ctx, "mkdir", args...)
	return err
}

// Remove deletes a path. Directories need recursive set.
func (f FS) Remove(ctx context.Context, path string, recursive bool) error {
	args := []string{}
	if recursive {
		args = append(args, "-r")
	}
	args = append(args, state.Resolve(path, f.s.State.Cwd()))
	_, err := f.s.Do(ctx, "rm", args...)
	return err
}

// Touch creates an empty file or updates an existing one's mtime.
func (f FS) Touch(ctx context.Context, path string) error {
	_, err := f.s.Do(ctx, "touch", state.Resolve(path, f.s.State.Cwd()))
	return err
}
