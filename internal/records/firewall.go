package records

// FirewallRule is one rule of an iptables chain listing. Counters are
// exact because the listing is taken with -x. InInterface and
// OutInterface are nil when the rule matches any interface ("*" in the
// listing).
type FirewallRule struct {
	Number       int
	Packets      int64
	Bytes        int64
	Target       string
	Protocol     string
	InInterface  *string
	OutInterface *string
	Source       string
	Destination  string
	Match        *string // trailing match text, e.g. "tcp dpt:22"
}

// FirewallChain is one iptables chain with its rules in listing order.
// Policy is nil for user-defined chains, which have a reference count
// instead of a default policy.
type FirewallChain struct {
	Name    string
	Policy  *string
	Packets int64 // handled by the default policy; zero for user chains
	Bytes   int64
	Rules   []FirewallRule
	Count   int
}

// FirewallTable is one iptables table (filter, nat, mangle, raw) with
// every chain the listing reported. Count is the total rule count
// across chains.
type FirewallTable struct {
	Table  string
	Chains []FirewallChain
	Count  int
}
