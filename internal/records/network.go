package records

// IPAddress is one address from ip -o addr.
type IPAddress struct {
	Interface string
	Address   string
	PrefixLen int
	Family    string // "inet" or "inet6"
	Scope     string
}

// IPAddressList preserves ip output order.
type IPAddressList struct {
	Addresses []IPAddress
	Count     int
}

// Route is one entry of the kernel routing table from ip route.
// Destination is "default" for the default route. Gateway, Device,
// Source and Metric are nil when the route does not carry them.
type Route struct {
	Destination string
	Gateway     *string
	Device      *string
	Source      *string
	Metric      *int
	Scope       *string
	Proto       *string
}

// RoutingTable preserves ip route output order.
type RoutingTable struct {
	Routes []Route
	Count  int
}

// Socket is one row of ss -Htunap: a listening socket or a connection.
// PID and ProcessName come from the process column and are nil when ss
// ran without the privileges to see them.
type Socket struct {
	Protocol    string // "tcp" or "udp"
	State       string // "LISTEN", "ESTAB", "UNCONN", ...
	LocalAddr   string
	LocalPort   int
	RemoteAddr  string
	RemotePort  int
	RecvQ       int64
	SendQ       int64
	PID         *int
	ProcessName *string
}

// SocketList preserves ss output order.
type SocketList struct {
	Sockets []Socket
	Count   int
}

// PingResult is the summary block of ping -c. Times are milliseconds.
// The rtt line is absent when every packet was lost, so the time fields
// are pointers.
type PingResult struct {
	Host        string
	Transmitted int
	Received    int
	LossPercent float64
	MinMs       *float64
	AvgMs       *float64
	MaxMs       *float64
	MdevMs      *float64
}

// InterfaceCounters is one interface row of /proc/net/dev. All counters
// are raw kernel totals since boot.
type InterfaceCounters struct {
	Name       string
	BytesIn    int64
	PacketsIn  int64
	ErrorsIn   int64
	DroppedIn  int64
	BytesOut   int64
	PacketsOut int64
	ErrorsOut  int64
	DroppedOut int64
}

// InterfaceCountersList preserves /proc/net/dev row order.
type InterfaceCountersList struct {
	Interfaces []InterfaceCounters
	Count      int
}
