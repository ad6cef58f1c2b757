package actions

// Overlay accessors. These mutate only the local session state; the
// next composed command line carries the change to the host.

// Cd changes the logical working directory. Relative paths resolve
// against the current cwd; nothing is executed remotely.
func (h *Host) Cd(dir string) {
	h.s.State.Cd(dir)
}

// Cwd returns the logical working directory.
func (h *Host) Cwd() string {
	return h.s.State.Cwd()
}

// Setenv assigns an environment variable for subsequent commands.
func (h *Host) Setenv(key, value string) {
	h.s.State.Set(key, value)
}

// Unsetenv removes an environment variable.
func (h *Host) Unsetenv(key string) {
	h.s.State.Unset(key)
}

// Getenv returns the value for key and whether it is set.
func (h *Host) Getenv(key string) (string, bool) {
	return h.s.State.Get(key)
}

// AppendEnv appends value to a ":"-delimited variable (idempotent).
func (h *Host) AppendEnv(key, value string) {
	h.s.State.Append(key, value)
}

// PrependEnv prepends value to a ":"-delimited variable (idempotent).
func (h *Host) PrependEnv(key, value string) {
	h.s.State.Prepend(key, value)
}

// ClearEnv removes every overlay variable.
func (h *Host) ClearEnv() {
	h.s.State.Clear()
}

// Environ returns a copy of the overlay environment.
func (h *Host) Environ() map[string]string {
	return h.s.State.Env()
}
