package command

import (
	"testing"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildComposition(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		args  []string
		setup func(o *state.Overlay)
		want  string
	}{
		{
			name: "bare command at root",
			base: "uptime",
			want: "cd '/' && 'uptime'",
		},
		{
			name: "args are individually quoted",
			base: "ls",
			args: []string{"-lA", "/var/log"},
			want: "cd '/' && 'ls' '-lA' '/var/log'",
		},
		{
			name:  "cwd is carried",
			base:  "pwd",
			setup: func(o *state.Overlay) { o.Cd("/srv/app") },
			want:  "cd '/srv/app' && 'pwd'",
		},
		{
			name: "env exports precede cd, sorted",
			base: "env",
			setup: func(o *state.Overlay) {
				o.Set("ZED", "z")
				o.Set("ALPHA", "a")
			},
			want: "export ALPHA='a' && export ZED='z' && cd '/' && 'env'",
		},
		{
			name: "spaces stay one argument",
			base: "mkdir",
			args: []string{"my project dir"},
			want: "cd '/' && 'mkdir' 'my project dir'",
		},
		{
			name: "metacharacters are literal",
			base: "echo",
			args: []string{"a && rm -rf /; b | c > d"},
			want: "cd '/' && 'echo' 'a && rm -rf /; b | c > d'",
		},
		{
			name: "globs are literal",
			base: "ls",
			args: []string{"*.log", "$(whoami)", "`id`"},
			want: "cd '/' && 'ls' '*.log' '$(whoami)' '`id`'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overlay := state.New()
			if tt.setup != nil {
				tt.setup(overlay)
			}

			got, err := Build(tt.base, tt.args, overlay)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildQuotesSingleQuotes(t *testing.T) {
	overlay := state.New()

	got, err := Build("echo", []string{"it's"}, overlay)
	require.NoError(t, err)
	assert.Equal(t, `cd '/' && 'echo' 'it'\''s'`, got)
}

func TestBuildQuotesEnvValues(t *testing.T) {
	overlay := state.New()
	overlay.Set("MSG", "don't; rm -rf /")

	got, err := Build("true", nil, overlay)
	require.NoError(t, err)
	assert.Equal(t, `export MSG='don'\''t; rm -rf /' && cd '/' && 'true'`, got)
}

func TestBuildRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		args  []string
		setup func(o *state.Overlay)
	}{
		{name: "empty base", base: ""},
		{name: "nul in base", base: "ls\x00"},
		{name: "nul in arg", base: "ls", args: []string{"a\x00b"}},
		{
			name:  "env key with dash",
			base:  "true",
			setup: func(o *state.Overlay) { o.Set("BAD-KEY", "v") },
		},
		{
			name:  "env key starting with digit",
			base:  "true",
			setup: func(o *state.Overlay) { o.Set("1KEY", "v") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overlay := state.New()
			if tt.setup != nil {
				tt.setup(overlay)
			}

			_, err := Build(tt.base, tt.args, overlay)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrInvalid))
		})
	}
}
