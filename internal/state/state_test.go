package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCdResolvesLexically(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want string
	}{
		{name: "absolute replaces", from: "/home/deploy", to: "/var/log", want: "/var/log"},
		{name: "relative joins", from: "/home/deploy", to: "app", want: "/home/deploy/app"},
		{name: "dotdot climbs", from: "/home/deploy/app", to: "..", want: "/home/deploy"},
		{name: "dotdot past root clamps", from: "/", to: "../../..", want: "/"},
		{name: "dot stays", from: "/srv", to: ".", want: "/srv"},
		{name: "messy path cleans", from: "/srv", to: "a//b/./c/..", want: "/srv/a/b"},
		{name: "trailing slash cleans", from: "/", to: "/var/log/", want: "/var/log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			o.Cd(tt.from)
			o.Cd(tt.to)
			assert.Equal(t, tt.want, o.Cwd())
		})
	}
}

func TestCwdAlwaysAbsolute(t *testing.T) {
	o := New()
	assert.Equal(t, "/", o.Cwd())

	o.Cd("relative/from/root")
	assert.Equal(t, "/relative/from/root", o.Cwd())

	o.Cd("../../../../..")
	assert.Equal(t, "/", o.Cwd())
}

func TestSetGetUnset(t *testing.T) {
	o := New()

	_, ok := o.Get("PATH")
	require.False(t, ok)

	o.Set("PATH", "/usr/bin")
	v, ok := o.Get("PATH")
	require.True(t, ok)
	assert.Equal(t, "/usr/bin", v)

	o.Set("PATH", "/usr/local/bin")
	v, _ = o.Get("PATH")
	assert.Equal(t, "/usr/local/bin", v, "set overwrites")

	o.Unset("PATH")
	_, ok = o.Get("PATH")
	assert.False(t, ok)

	// Unset of a missing key is a no-op, not a panic.
	o.Unset("MISSING")
}

func TestAppendPrepend(t *testing.T) {
	tests := []struct {
		name  string
		setup func(o *Overlay)
		want  string
	}{
		{
			name:  "append to unset behaves like set",
			setup: func(o *Overlay) { o.Append("PATH", "/opt/bin") },
			want:  "/opt/bin",
		},
		{
			name: "append extends with colon",
			setup: func(o *Overlay) {
				o.Set("PATH", "/usr/bin")
				o.Append("PATH", "/opt/bin")
			},
			want: "/usr/bin:/opt/bin",
		},
		{
			name: "prepend puts value first",
			setup: func(o *Overlay) {
				o.Set("PATH", "/usr/bin")
				o.Prepend("PATH", "/opt/bin")
			},
			want: "/opt/bin:/usr/bin",
		},
		{
			name: "append is idempotent",
			setup: func(o *Overlay) {
				o.Set("PATH", "/usr/bin:/opt/bin")
				o.Append("PATH", "/opt/bin")
				o.Append("PATH", "/opt/bin")
			},
			want: "/usr/bin:/opt/bin",
		},
		{
			name: "prepend is idempotent",
			setup: func(o *Overlay) {
				o.Set("PATH", "/opt/bin:/usr/bin")
				o.Prepend("PATH", "/opt/bin")
			},
			want: "/opt/bin:/usr/bin",
		},
		{
			name: "substring element does not count as present",
			setup: func(o *Overlay) {
				o.Set("PATH", "/opt/binary")
				o.Append("PATH", "/opt/bin")
			},
			want: "/opt/binary:/opt/bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New()
			tt.setup(o)
			v, _ := o.Get("PATH")
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestClear(t *testing.T) {
	o := New()
	o.Cd("/srv")
	o.Set("A", "1")
	o.Set("B", "2")

	o.Clear()

	assert.Empty(t, o.Env())
	assert.Equal(t, "/srv", o.Cwd(), "clear leaves cwd alone")
}

func TestEnvKeysSorted(t *testing.T) {
	o := New()
	o.Set("ZED", "1")
	o.Set("ALPHA", "2")
	o.Set("MID", "3")

	assert.Equal(t, []string{"ALPHA", "MID", "ZED"}, o.EnvKeys())
}

func TestEnvReturnsCopy(t *testing.T) {
	o := New()
	o.Set("KEY", "original")

	env := o.Env()
	env["KEY"] = "mutated"

	v, _ := o.Get("KEY")
	assert.Equal(t, "original", v)
}

func TestSnapshotIndependent(t *testing.T) {
	o := New()
	o.Cd("/srv")
	o.Set("KEY", "value")

	snap := o.Snapshot()
	o.Cd("/tmp")
	o.Set("KEY", "changed")

	assert.Equal(t, "/srv", snap.Cwd())
	v, _ := snap.Get("KEY")
	assert.Equal(t, "value", v)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "/var/log", Resolve("/var/log", "/home"))
	assert.Equal(t, "/home/app", Resolve("app", "/home"))
	assert.Equal(t, "/", Resolve("..", "/home"))
}
