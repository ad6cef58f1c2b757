package remote

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/records"
)

// Rule maps a failure signature to an error code. ExitCode -1 matches
// any non-zero exit; an empty Stderr substring matches anything. Rules
// are data so new command families extend the table, not the executor.
type Rule struct {
	ExitCode int
	Stderr   string // lowercase substring of stderr
	Code     string
	Message  string
}

// familyRules holds command-specific classification, keyed by base
// command. The same exit code means different things to different
// tools: stat exits 1 for a missing file, grep exits 1 for "no match",
// so families get their own first look before the generic rules.
var familyRules = map[string][]Rule{
	"stat": {
		{ExitCode: 1, Stderr: "no such file", Code: errors.ErrNotFound, Message: "No such file or directory"},
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
	},
	"ls": {
		{ExitCode: 2, Stderr: "no such file", Code: errors.ErrNotFound, Message: "No such file or directory"},
		{ExitCode: 2, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
	},
	"cat": {
		{ExitCode: 1, Stderr: "no such file", Code: errors.ErrNotFound, Message: "No such file or directory"},
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
		{ExitCode: 1, Stderr: "is a directory", Code: errors.ErrInvalid, Message: "Target is a directory"},
	},
	"mkdir": {
		{ExitCode: 1, Stderr: "file exists", Code: errors.ErrExists, Message: "Directory already exists"},
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
		{ExitCode: 1, Stderr: "no such file", Code: errors.ErrNotFound, Message: "Parent directory does not exist"},
	},
	"rm": {
		{ExitCode: 1, Stderr: "no such file", Code: errors.ErrNotFound, Message: "No such file or directory"},
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
		{ExitCode: 1, Stderr: "is a directory", Code: errors.ErrInvalid, Message: "Target is a directory (use recursive removal)"},
	},
	"kill": {
		{ExitCode: 1, Stderr: "no such process", Code: errors.ErrNotFound, Message: "No such process"},
		{ExitCode: 1, Stderr: "operation not permitted", Code: errors.ErrPermission, Message: "Not permitted to signal that process"},
	},
	"systemctl": {
		{ExitCode: 4, Stderr: "", Code: errors.ErrNotFound, Message: "No such unit"},
		{ExitCode: 5, Stderr: "", Code: errors.ErrNotFound, Message: "No such unit"},
		{ExitCode: 1, Stderr: "access denied", Code: errors.ErrPermission, Message: "Access denied by systemd"},
		{ExitCode: -1, Stderr: "interactive authentication required", Code: errors.ErrPermission, Message: "Authentication required (run with privileges)"},
	},
	"docker": {
		{ExitCode: 1, Stderr: "no such container", Code: errors.ErrNotFound, Message: "No such container"},
		{ExitCode: 1, Stderr: "no such image", Code: errors.ErrNotFound, Message: "No such image"},
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Docker socket permission denied"},
		{ExitCode: -1, Stderr: "cannot connect to the docker daemon", Code: errors.ErrNotFound, Message: "Docker daemon not running"},
	},
	"git": {
		{ExitCode: 128, Stderr: "not a git repository", Code: errors.ErrNotFound, Message: "Not a git repository"},
		{ExitCode: 128, Stderr: "already exists", Code: errors.ErrExists, Message: "Destination already exists"},
		{ExitCode: 128, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
	},
	"crontab": {
		{ExitCode: 1, Stderr: "no crontab for", Code: errors.ErrNotFound, Message: "No crontab for user"},
		{ExitCode: 1, Stderr: "not allowed", Code: errors.ErrPermission, Message: "User may not use crontab"},
	},
	"ping": {
		{ExitCode: 2, Stderr: "unknown host", Code: errors.ErrNotFound, Message: "Unknown host"},
		{ExitCode: 2, Stderr: "name or service not known", Code: errors.ErrNotFound, Message: "Unknown host"},
	},
	"iptables": {
		{ExitCode: 1, Stderr: "no chain/target/match by that name", Code: errors.ErrNotFound, Message: "No such chain or target"},
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied (iptables needs root)"},
		{ExitCode: 1, Stderr: "operation not permitted", Code: errors.ErrPermission, Message: "Permission denied (iptables needs root)"},
		{ExitCode: 2, Stderr: "", Code: errors.ErrInvalid, Message: "Invalid iptables invocation"},
	},
	"touch": {
		{ExitCode: 1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
		{ExitCode: 1, Stderr: "no such file", Code: errors.ErrNotFound, Message: "Parent directory does not exist"},
	},
}

// genericRules run when no family rule matched. Ordered: the first
// match wins.
var genericRules = []Rule{
	{ExitCode: -1, Stderr: "permission denied", Code: errors.ErrPermission, Message: "Permission denied"},
	{ExitCode: -1, Stderr: "operation not permitted", Code: errors.ErrPermission, Message: "Operation not permitted"},
	{ExitCode: -1, Stderr: "no such file or directory", Code: errors.ErrNotFound, Message: "No such file or directory"},
	{ExitCode: -1, Stderr: "already exists", Code: errors.ErrExists, Message: "Resource already exists"},
	{ExitCode: -1, Stderr: "file exists", Code: errors.ErrExists, Message: "Resource already exists"},
	{ExitCode: -1, Stderr: "invalid argument", Code: errors.ErrInvalid, Message: "Invalid argument"},
	{ExitCode: 124, Stderr: "", Code: errors.ErrTimeout, Message: "Remote command timed out"},
}

// commandNotFoundPatterns detect a missing executable from shell stderr.
// These require exit code 127.
var commandNotFoundPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bash: (\S+): command not found`),
	regexp.MustCompile(`(?i)zsh: command not found: (\S+)`),
	regexp.MustCompile(`(?i)sh: \d+: (\S+): not found`),
	regexp.MustCompile(`(?i)(\S+): command not found`),
	regexp.MustCompile(`(?i)(\S+): not found`),
}

// Classify inspects a raw result and returns nil for success or a typed
// error for failure. Exit code 0 never classifies as failure regardless
// of stderr content — tools routinely warn on stderr and still succeed.
func Classify(base string, r records.RawResult) *errors.Error {
	if r.ExitCode == 0 {
		return nil
	}

	stderrLower := strings.ToLower(r.Stderr)

	// Shell-level "command not found" outranks family rules: the tool
	// never ran, so its exit code conventions don't apply.
	if r.ExitCode == 127 {
		name := base
		for _, pattern := range commandNotFoundPatterns {
			if matches := pattern.FindStringSubmatch(r.Stderr); len(matches) > 1 {
				name = matches[1]
				break
			}
		}
		return errors.New(errors.ErrNotFound,
			fmt.Sprintf("'%s' not found on the remote host", name),
			fmt.Sprintf("Install it or check the PATH: which %s", name)).WithResult(r)
	}

	for _, rule := range familyRules[base] {
		if rule.matches(r.ExitCode, stderrLower) {
			return errors.New(rule.Code,
				fmt.Sprintf("%s: %s", rule.Message, r.Command), "").WithResult(r)
		}
	}

	for _, rule := range genericRules {
		if rule.matches(r.ExitCode, stderrLower) {
			return errors.New(rule.Code,
				fmt.Sprintf("%s: %s", rule.Message, r.Command), "").WithResult(r)
		}
	}

	return errors.New(errors.ErrCommand,
		fmt.Sprintf("Command failed with exit code %d: %s", r.ExitCode, r.Command),
		"Inspect the attached stderr for details").WithResult(r)
}

func (rule Rule) matches(exitCode int, stderrLower string) bool {
	if rule.ExitCode != -1 && rule.ExitCode != exitCode {
		return false
	}
	if rule.Stderr != "" && !strings.Contains(stderrLower, rule.Stderr) {
		return false
	}
	return true
}

// RegisterRules adds classification rules for a command family,
// prepended so callers can override the defaults.
func RegisterRules(base string, rules ...Rule) {
	familyRules[base] = append(rules, familyRules[base]...)
}
