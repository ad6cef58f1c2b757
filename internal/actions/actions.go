// Package actions is the typed convenience layer over a session. Each
// method composes exactly one remote command, runs it through the
// execution engine, and returns the typed record its family parser
// produces. Nothing here retries, loops, or scripts; a method is one
// command.
package actions

import (
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Host groups the command families for one session. The zero value is
// not usable; call Bind.
type Host struct {
	s *remote.Session
}

// Bind wraps a session in the action layer. The session stays owned by
// the caller, who closes it.
func Bind(s *remote.Session) *Host {
	return &Host{s: s}
}

// Session exposes the underlying session for callers that need Do
// directly.
func (h *Host) Session() *remote.Session { return h.s }

// FS returns the filesystem command family.
func (h *Host) FS() FS { return FS{h.s} }

// PS returns the process command family.
func (h *Host) PS() PS { return PS{h.s} }

// Net returns the networking command family.
func (h *Host) Net() Net { return Net{h.s} }

// Sys returns the system identity command family.
func (h *Host) Sys() Sys { return Sys{h.s} }

// Service returns the systemd unit command family.
func (h *Host) Service() Service { return Service{h.s} }

// Device returns the block device and mount command family.
func (h *Host) Device() Device { return Device{h.s} }

// Docker returns the container command family.
func (h *Host) Docker() Docker { return Docker{h.s} }

// Git returns the repository command family.
func (h *Host) Git() Git { return Git{h.s} }

// Cron returns the crontab command family.
func (h *Host) Cron() Cron { return Cron{h.s} }

// Firewall returns the iptables command family.
func (h *Host) Firewall() Firewall { return Firewall{h.s} }
