package records

// ProcessInfo is one row of ps aux. CPUPercent and MemPercent are the
// %CPU/%MEM columns; RSS and VSZ are converted from ps's KiB columns to
// bytes at parse time.
type ProcessInfo struct {
	PID        int
	User       string
	CPUPercent float64
	MemPercent float64
	VSZ        int64 // virtual size in bytes
	RSS        int64 // resident set size in bytes
	TTY        string
	State      string
	Started    string // START column as printed; ps aux does not emit a full timestamp
	CPUTime    string
	Command    string
}

// ProcessList is the full process table in ps output order.
type ProcessList struct {
	Processes []ProcessInfo
	Count     int
}

// ProcessUsage is the per-process snapshot from ps -o pid=,rss=,vsz=,pcpu=.
// RSS and VSZ are in bytes.
type ProcessUsage struct {
	PID        int
	CPUPercent float64
	RSS        int64
	VSZ        int64
}

// MemoryUsage is parsed from free -b, so every size field is already in
// bytes. SwapPercent is zero when the host has no swap configured.
type MemoryUsage struct {
	Total       int64
	Used        int64
	Free        int64
	Shared      int64
	BuffCache   int64
	Available   int64
	UsedPercent float64
	SwapTotal   int64
	SwapUsed    int64
	SwapFree    int64
	SwapPercent float64
}

// Meminfo is the kernel's own memory accounting from /proc/meminfo,
// more detailed than free's summary. All fields are converted from the
// file's kB values to bytes at parse time.
type Meminfo struct {
	Total     int64
	Free      int64
	Available int64
	Buffers   int64
	Cached    int64
	SwapTotal int64
	SwapFree  int64
	Dirty     int64
	Slab      int64
}

// CPUTimes is the aggregate cpu line of /proc/stat. The *Jiffies fields
// are raw kernel tick counts; the *Percent fields are shares of the total
// since boot.
type CPUTimes struct {
	UserJiffies    int64
	NiceJiffies    int64
	SystemJiffies  int64
	IdleJiffies    int64
	IOWaitJiffies  int64
	IRQJiffies     int64
	SoftIRQJiffies int64
	UserPercent    float64
	SystemPercent  float64
	IdlePercent    float64
	IOWaitPercent  float64
	Cores          int
}
