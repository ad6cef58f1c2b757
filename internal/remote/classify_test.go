package remote

import (
	"testing"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExitZeroNeverFails(t *testing.T) {
	// Tools routinely warn on stderr while succeeding.
	err := Classify("tar", records.RawResult{
		Command:  "tar xf archive.tar",
		ExitCode: 0,
		Stderr:   "tar: Removing leading '/' from member names\nWARNING: something",
	})
	assert.Nil(t, err)
}

func TestClassifyFamilyRules(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		exitCode int
		stderr   string
		wantCode string
	}{
		{
			name: "stat missing file", base: "stat", exitCode: 1,
			stderr:   "stat: cannot statx '/nope': No such file or directory",
			wantCode: errors.ErrNotFound,
		},
		{
			name: "ls permission denied", base: "ls", exitCode: 2,
			stderr:   "ls: cannot open directory '/root/secret': Permission denied",
			wantCode: errors.ErrPermission,
		},
		{
			name: "mkdir already exists", base: "mkdir", exitCode: 1,
			stderr:   "mkdir: cannot create directory '/tmp/x': File exists",
			wantCode: errors.ErrExists,
		},
		{
			name: "cat target is directory", base: "cat", exitCode: 1,
			stderr:   "cat: /tmp: Is a directory",
			wantCode: errors.ErrInvalid,
		},
		{
			name: "kill no such process", base: "kill", exitCode: 1,
			stderr:   "kill: (99999): No such process",
			wantCode: errors.ErrNotFound,
		},
		{
			name: "systemctl unknown unit exit 4", base: "systemctl", exitCode: 4,
			stderr:   "Unit nope.service could not be found.",
			wantCode: errors.ErrNotFound,
		},
		{
			name: "systemctl needs auth", base: "systemctl", exitCode: 1,
			stderr:   "Interactive authentication required.",
			wantCode: errors.ErrPermission,
		},
		{
			name: "docker daemon down", base: "docker", exitCode: 1,
			stderr:   "Cannot connect to the Docker daemon at unix:///var/run/docker.sock.",
			wantCode: errors.ErrNotFound,
		},
		{
			name: "git not a repository", base: "git", exitCode: 128,
			stderr:   "fatal: not a git repository (or any of the parent directories): .git",
			wantCode: errors.ErrNotFound,
		},
		{
			name: "crontab empty", base: "crontab", exitCode: 1,
			stderr:   "no crontab for deploy",
			wantCode: errors.ErrNotFound,
		},
		{
			name: "ping unknown host", base: "ping", exitCode: 2,
			stderr:   "ping: nowhere.invalid: Name or service not known",
			wantCode: errors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify(tt.base, records.RawResult{
				Command:  tt.base,
				ExitCode: tt.exitCode,
				Stderr:   tt.stderr,
			})
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			require.NotNil(t, err.Result, "classification attaches the raw result")
			assert.Equal(t, tt.exitCode, err.Result.ExitCode)
		})
	}
}

func TestClassifyCommandNotFound(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
	}{
		{name: "bash style", stderr: "bash: htop: command not found"},
		{name: "zsh style", stderr: "zsh: command not found: htop"},
		{name: "dash style", stderr: "sh: 1: htop: not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("htop", records.RawResult{ExitCode: 127, Stderr: tt.stderr})
			require.NotNil(t, err)
			assert.Equal(t, errors.ErrNotFound, err.Code)
			assert.Contains(t, err.Message, "htop")
		})
	}
}

func TestClassify127OutranksFamilyRules(t *testing.T) {
	// The tool never ran, so family exit-code conventions don't apply.
	err := Classify("stat", records.RawResult{
		ExitCode: 127,
		Stderr:   "bash: stat: command not found",
	})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
	assert.Contains(t, err.Message, "not found on the remote host")
}

func TestClassifyGenericRules(t *testing.T) {
	tests := []struct {
		name     string
		exitCode int
		stderr   string
		wantCode string
	}{
		{name: "permission denied", exitCode: 1, stderr: "frobnicate: Permission denied", wantCode: errors.ErrPermission},
		{name: "no such file", exitCode: 1, stderr: "frobnicate: no such file or directory", wantCode: errors.ErrNotFound},
		{name: "already exists", exitCode: 1, stderr: "frobnicate: target already exists", wantCode: errors.ErrExists},
		{name: "timeout wrapper exit 124", exitCode: 124, stderr: "", wantCode: errors.ErrTimeout},
		{name: "anything else is a command error", exitCode: 3, stderr: "some unclassified failure", wantCode: errors.ErrCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("frobnicate", records.RawResult{ExitCode: tt.exitCode, Stderr: tt.stderr})
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
		})
	}
}

func TestRegisterRulesOverridesDefaults(t *testing.T) {
	RegisterRules("grep", Rule{ExitCode: 1, Stderr: "", Code: errors.ErrNotFound, Message: "No lines matched"})
	defer delete(familyRules, "grep")

	err := Classify("grep", records.RawResult{ExitCode: 1})
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNotFound, err.Code)
}
