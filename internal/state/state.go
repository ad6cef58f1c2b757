// Package state tracks the logical shell state of a remote session.
// The remote side forgets cwd and exports between commands, so this
// overlay is materialized into every command line instead of being sent
// to the host.
package state

import (
	"path"
	"sort"
	"strings"
)

// DefaultCwd is the working directory before the session probes the
// real one.
const DefaultCwd = "/"

// Overlay holds the logical working directory and environment for one
// session. Mutations are purely local; nothing is executed remotely.
// Cwd is always an absolute path.
type Overlay struct {
	cwd string
	env map[string]string
}

// New returns an overlay rooted at /.
func New() *Overlay {
	return &Overlay{
		cwd: DefaultCwd,
		env: make(map[string]string),
	}
}

// Cwd returns the current logical working directory.
func (o *Overlay) Cwd() string {
	return o.cwd
}

// Cd updates the working directory. Relative paths resolve against the
// current cwd lexically; existence is not checked here — callers that
// care issue a follow-up stat.
func (o *Overlay) Cd(p string) {
	o.cwd = Resolve(p, o.cwd)
}

// Set assigns an environment variable.
func (o *Overlay) Set(key, value string) {
	o.env[key] = value
}

// Unset removes an environment variable.
func (o *Overlay) Unset(key string) {
	delete(o.env, key)
}

// Get returns the value for key and whether it is set.
func (o *Overlay) Get(key string) (string, bool) {
	v, ok := o.env[key]
	return v, ok
}

// Clear removes all environment variables.
func (o *Overlay) Clear() {
	o.env = make(map[string]string)
}

// Append adds value to the end of a ":"-delimited variable. Idempotent:
// if value is already an element, the variable is left untouched.
func (o *Overlay) Append(key, value string) {
	current, ok := o.env[key]
	if !ok || current == "" {
		o.env[key] = value
		return
	}
	if containsElement(current, value) {
		return
	}
	o.env[key] = current + ":" + value
}

// Prepend adds value to the front of a ":"-delimited variable, with the
// same idempotence as Append.
func (o *Overlay) Prepend(key, value string) {
	current, ok := o.env[key]
	if !ok || current == "" {
		o.env[key] = value
		return
	}
	if containsElement(current, value) {
		return
	}
	o.env[key] = value + ":" + current
}

// Env returns a copy of the environment mapping.
func (o *Overlay) Env() map[string]string {
	out := make(map[string]string, len(o.env))
	for k, v := range o.env {
		out[k] = v
	}
	return out
}

// EnvKeys returns the variable names in sorted order, so composed
// command lines are deterministic.
func (o *Overlay) EnvKeys() []string {
	keys := make([]string, 0, len(o.env))
	for k := range o.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns an independent copy of the overlay.
func (o *Overlay) Snapshot() *Overlay {
	return &Overlay{cwd: o.cwd, env: o.Env()}
}

// Resolve resolves p against cwd lexically, collapsing "." and ".."
// components. The result is always absolute because cwd is.
func Resolve(p, cwd string) string {
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(cwd, p)
}

func containsElement(list, value string) bool {
	for _, part := range strings.Split(list, ":") {
		if part == value {
			return true
		}
	}
	return false
}
