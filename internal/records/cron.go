package records

// CronJob is one non-comment line of a crontab. For @-shortcut lines
// (@reboot, @daily, ...) Shortcut is set and the five field columns are
// nil; for standard lines it is the other way around.
type CronJob struct {
	Minute     *string
	Hour       *string
	DayOfMonth *string
	Month      *string
	DayOfWeek  *string
	Shortcut   *string
	Command    string
}

// CronTable is a user's crontab in file order. Comment and blank lines
// are skipped but never counted.
type CronTable struct {
	User  string
	Jobs  []CronJob
	Count int
}
