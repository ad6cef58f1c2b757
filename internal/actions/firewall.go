package actions

import (
	"context"
	"strconv"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Firewall is the iptables command family. Listing and mutating rules
// needs root; commands are never escalated here, so a non-root session
// gets ErrPermission back.
type Firewall struct {
	s *remote.Session
}

// Rules lists every chain of the filter table with exact counters.
func (fw Firewall) Rules(ctx context.Context) (records.FirewallTable, error) {
	return fw.Table(ctx, "filter")
}

// Table lists every chain of one iptables table (filter, nat, mangle,
// raw).
func (fw Firewall) Table(ctx context.Context, table string) (records.FirewallTable, error) {
	return remote.Run(ctx, fw.s, "iptables",
		[]string{"-t", table, "-L", "-vnx", "--line-numbers"},
		parsers.ParseIptables(table))
}

// Chain lists one chain of the filter table.
func (fw Firewall) Chain(ctx context.Context, chain string) (records.FirewallChain, error) {
	t, err := remote.Run(ctx, fw.s, "iptables",
		[]string{"-t", "filter", "-L", chain, "-vnx", "--line-numbers"},
		parsers.ParseIptables("filter"))
	if err != nil {
		return records.FirewallChain{}, err
	}
	if len(t.Chains) == 0 {
		return records.FirewallChain{}, errors.New(errors.ErrNotFound,
			"Chain not present in iptables output: "+chain, "")
	}
	return t.Chains[0], nil
}

// OpenPort appends an INPUT rule accepting traffic to a port. The
// protocol defaults to tcp.
func (fw Firewall) OpenPort(ctx context.Context, port int, protocol string) error {
	_, err := fw.s.Do(ctx, "iptables", portRule("-A", port, protocol)...)
	return err
}

// ClosePort deletes the INPUT accept rule for a port previously added
// with OpenPort.
func (fw Firewall) ClosePort(ctx context.Context, port int, protocol string) error {
	_, err := fw.s.Do(ctx, "iptables", portRule("-D", port, protocol)...)
	return err
}

func portRule(op string, port int, protocol string) []string {
	if protocol == "" {
		protocol = "tcp"
	}
	return []string{op, "INPUT", "-p", protocol,
		"--dport", strconv.Itoa(port), "-j", "ACCEPT"}
}

// SetPolicy sets the default policy of a built-in chain.
func (fw Firewall) SetPolicy(ctx context.Context, chain, policy string) error {
	_, err := fw.s.Do(ctx, "iptables", "-P", chain, policy)
	return err
}

// DeleteRule removes one rule from a chain by its listing number.
func (fw Firewall) DeleteRule(ctx context.Context, chain string, number int) error {
	_, err := fw.s.Do(ctx, "iptables", "-D", chain, strconv.Itoa(number))
	return err
}
