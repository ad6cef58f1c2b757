package actions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rileyhilliard/rmac/internal/errors"
	"github.com/rileyhilliard/rmac/internal/parsers"
	"github.com/rileyhilliard/rmac/internal/records"
	"github.com/rileyhilliard/rmac/internal/remote"
)

// Net is the networking command family.
type Net struct {
	s *remote.Session
}

// Addresses returns every configured IP address (ip -o addr).
func (n Net) Addresses(ctx context.Context) (records.IPAddressList, error) {
	return remote.Run(ctx, n.s, "ip", []string{"-o", "addr", "show"}, parsers.ParseIPAddr)
}

// Routes returns the main routing table.
func (n Net) Routes(ctx context.Context) (records.RoutingTable, error) {
	return remote.Run(ctx, n.s, "ip", []string{"route", "show"}, parsers.ParseIPRoute)
}

// Sockets returns TCP and UDP sockets with owning processes where
// visible (ss -Htunap).
func (n Net) Sockets(ctx context.Context) (records.SocketList, error) {
	return remote.Run(ctx, n.s, "ss", []string{"-Htunap"}, parsers.ParseSS)
}

// Counters returns the per-interface byte/packet/error counters from
// /proc/net/dev.
func (n Net) Counters(ctx context.Context) (records.InterfaceCountersList, error) {
	return remote.Run(ctx, n.s, "cat", []string{"/proc/net/dev"}, parsers.ParseProcNetDev)
}

// Ping sends count echo requests from the remote host. Packet loss is
// an answer, not a failure: ping exits 1 when replies were lost but the
// statistics still parse, so a lossy or fully dark target comes back as
// a PingResult.
func (n Net) Ping(ctx context.Context, host string, count int) (records.PingResult, error) {
	if count <= 0 {
		count = 3
	}

	result, err := n.s.Do(ctx, "ping", "-c", strconv.Itoa(count), host)
	if err != nil {
		r, ok := errors.ResultOf(err)
		if !ok || r.ExitCode != 1 {
			return records.PingResult{}, err
		}
		result = *r
	}

	parsed, perr := parsers.ParsePing(result.Stdout)
	if perr != nil {
		return records.PingResult{}, errors.WrapWithCode(perr, errors.ErrParse,
			fmt.Sprintf("Could not interpret output of %q", result.Command),
			"The tool's output format may differ on this host; the raw stdout is attached").
			WithResult(result)
	}
	return parsed, nil
}
