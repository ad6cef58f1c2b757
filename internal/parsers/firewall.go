package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("iptables", untyped(ParseIptables("filter")))
}

// Chain headers come in two shapes: built-in chains carry a default
// policy with counters, user-defined chains carry a reference count.
var (
	chainPolicyRe = regexp.MustCompile(`^Chain (\S+) \(policy (\S+) (\d+) packets, (\d+) bytes\)$`)
	chainRefsRe   = regexp.MustCompile(`^Chain (\S+) \(\d+ references\)$`)
)

// ParseIptables returns a parser for
//
//	iptables -t <table> -L -vnx --line-numbers
//
// output bound to the table it listed. Rules keep listing order; the
// -x flag makes the packet/byte counters exact decimal, so no suffix
// scaling happens here.
func ParseIptables(table string) func(string) (records.FirewallTable, error) {
	return func(stdout string) (records.FirewallTable, error) {
		var chains []records.FirewallChain
		var current *records.FirewallChain
		total := 0

		flush := func() {
			if current != nil {
				current.Count = len(current.Rules)
				chains = append(chains, *current)
				current = nil
			}
		}

		for _, line := range nonEmptyLines(stdout) {
			if m := chainPolicyRe.FindStringSubmatch(line); m != nil {
				flush()
				packets, err := parseInt64(m[3], "chain packets")
				if err != nil {
					return records.FirewallTable{}, err
				}
				bytes, err := parseInt64(m[4], "chain bytes")
				if err != nil {
					return records.FirewallTable{}, err
				}
				current = &records.FirewallChain{
					Name:    m[1],
					Policy:  &m[2],
					Packets: packets,
					Bytes:   bytes,
				}
				continue
			}
			if m := chainRefsRe.FindStringSubmatch(line); m != nil {
				flush()
				current = &records.FirewallChain{Name: m[1]}
				continue
			}

			fields := strings.Fields(line)
			// Column header row under each chain banner.
			if fields[0] == "num" {
				continue
			}
			if current == nil {
				return records.FirewallTable{}, fmt.Errorf("iptables rule outside any chain: %q", line)
			}
			if len(fields) < 10 {
				return records.FirewallTable{}, fmt.Errorf("short iptables rule line: %q", line)
			}

			number, err := parseInt(fields[0], "rule number")
			if err != nil {
				return records.FirewallTable{}, err
			}
			packets, err := parseInt64(fields[1], "rule packets")
			if err != nil {
				return records.FirewallTable{}, err
			}
			bytes, err := parseInt64(fields[2], "rule bytes")
			if err != nil {
				return records.FirewallTable{}, err
			}

			rule := records.FirewallRule{
				Number:       number,
				Packets:      packets,
				Bytes:        bytes,
				Target:       fields[3],
				Protocol:     fields[4],
				InInterface:  anyInterface(fields[6]),
				OutInterface: anyInterface(fields[7]),
				Source:       fields[8],
				Destination:  fields[9],
			}
			if len(fields) > 10 {
				match := strings.Join(fields[10:], " ")
				rule.Match = &match
			}

			current.Rules = append(current.Rules, rule)
			total++
		}
		flush()

		if len(chains) == 0 {
			return records.FirewallTable{}, fmt.Errorf("no chain headers in iptables output")
		}
		return records.FirewallTable{Table: table, Chains: chains, Count: total}, nil
	}
}

// anyInterface maps iptables' "*" wildcard to an absent interface.
func anyInterface(s string) *string {
	if s == "*" {
		return nil
	}
	return &s
}
