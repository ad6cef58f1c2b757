package actions

import (
	"context"

	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Cron is the crontab command family.
type Cron struct {
	s *remote.Session
}

// List returns the connecting user's crontab. A user with no crontab is
// a NOTFOUND error, matching crontab's own exit behavior.
func (c Cron) List(ctx context.Context) (records.CronTable, error) {
	return remote.Run(ctx, c.s, "crontab", []string{"-l"}, parsers.ParseCrontab(""))
}

// ListFor returns another user's crontab; needs privileges.
func (c Cron) ListFor(ctx context.Context, user string) (records.CronTable, error) {
	return remote.Run(ctx, c.s, "crontab", []string{"-l", "-u", user}, parsers.ParseCrontab(user))
}
