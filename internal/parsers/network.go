package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rileyhilliard/rmac/internal/records"
)

func init() {
	register("ip_addr", untyped(ParseIPAddr))
	register("ip_route", untyped(ParseIPRoute))
	register("ss", untyped(ParseSS))
	register("ping", untyped(ParsePing))
	register("proc_net_dev", untyped(ParseProcNetDev))
}

// ParseIPAddr parses ip -o addr show output: one address per line,
//
//	2: eth0    inet 192.168.1.10/24 brd 192.168.1.255 scope global eth0
func ParseIPAddr(stdout string) (records.IPAddressList, error) {
	var addrs []records.IPAddress

	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return records.IPAddressList{}, fmt.Errorf("short ip addr line: %q", line)
		}

		family := fields[2]
		if family != "inet" && family != "inet6" {
			return records.IPAddressList{}, fmt.Errorf("unexpected address family %q in %q", family, line)
		}

		cidr := fields[3]
		addr, prefixStr, found := strings.Cut(cidr, "/")
		if !found {
			return records.IPAddressList{}, fmt.Errorf("address %q has no prefix length", cidr)
		}
		prefix, err := parseInt(prefixStr, "prefix length")
		if err != nil {
			return records.IPAddressList{}, err
		}

		scope := ""
		for i := 4; i < len(fields)-1; i++ {
			if fields[i] == "scope" {
				scope = fields[i+1]
				break
			}
		}

		addrs = append(addrs, records.IPAddress{
			Interface: strings.TrimSuffix(fields[1], ":"),
			Address:   addr,
			PrefixLen: prefix,
			Family:    family,
			Scope:     scope,
		})
	}

	return records.IPAddressList{Addresses: addrs, Count: len(addrs)}, nil
}

// ParseIPRoute parses ip route show output. Each line starts with the
// destination; the rest is keyword/value pairs in any order.
func ParseIPRoute(stdout string) (records.RoutingTable, error) {
	var routes []records.Route

	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) < 1 {
			continue
		}

		route := records.Route{Destination: fields[0]}
		i := 1
		for i < len(fields)-1 {
			key, value := fields[i], fields[i+1]
			switch key {
			case "via":
				route.Gateway = &value
			case "dev":
				route.Device = &value
			case "src":
				route.Source = &value
			case "scope":
				route.Scope = &value
			case "proto":
				route.Proto = &value
			case "metric":
				metric, err := parseInt(value, "route metric")
				if err != nil {
					return records.RoutingTable{}, err
				}
				route.Metric = &metric
			default:
				// Unknown keyword: skip just the keyword, it may be a
				// flag with no value (e.g. "linkdown").
				i++
				continue
			}
			i += 2
		}

		routes = append(routes, route)
	}

	return records.RoutingTable{Routes: routes, Count: len(routes)}, nil
}

// ssProcessRe extracts the first process from an ss users: column, e.g.
// users:(("sshd",pid=1234,fd=3)).
var ssProcessRe = regexp.MustCompile(`\(\("([^"]+)",pid=(\d+)`)

// ParseSS parses ss -Htunap output (headerless): one socket per line,
//
//	tcp LISTEN 0 128 0.0.0.0:22 0.0.0.0:* users:(("sshd",pid=1234,fd=3))
//
// PID and process name are nil when ss could not see them.
func ParseSS(stdout string) (records.SocketList, error) {
	var rows []records.Socket
	for _, line := range nonEmptyLines(stdout) {
		fields := strings.Fields(line)
		if len(fields) < 6 {
			return records.SocketList{}, fmt.Errorf("short ss line: %q", line)
		}

		recvQ, err := parseInt64(fields[2], "recv-q")
		if err != nil {
			return records.SocketList{}, err
		}
		sendQ, err := parseInt64(fields[3], "send-q")
		if err != nil {
			return records.SocketList{}, err
		}

		localAddr, localPort, err := splitHostPort(fields[4])
		if err != nil {
			return records.SocketList{}, err
		}
		remoteAddr, remotePort, err := splitHostPort(fields[5])
		if err != nil {
			return records.SocketList{}, err
		}

		sock := records.Socket{
			Protocol:   fields[0],
			State:      fields[1],
			LocalAddr:  localAddr,
			LocalPort:  localPort,
			RemoteAddr: remoteAddr,
			RemotePort: remotePort,
			RecvQ:      recvQ,
			SendQ:      sendQ,
		}

		if len(fields) > 6 {
			if m := ssProcessRe.FindStringSubmatch(strings.Join(fields[6:], " ")); m != nil {
				name := m[1]
				pid, convErr := parseInt(m[2], "socket pid")
				if convErr == nil {
					sock.ProcessName = &name
					sock.PID = &pid
				}
			}
		}

		rows = append(rows, sock)
	}

	return records.SocketList{Sockets: rows, Count: len(rows)}, nil
}

// splitHostPort splits an ss address column on the last colon. The port
// may be "*" for unbound, reported as 0.
func splitHostPort(s string) (string, int, error) {
	idx := strings.LastIndex(s, ":")
	if idx == -1 {
		return "", 0, fmt.Errorf("address %q has no port separator", s)
	}
	host, portStr := s[:idx], s[idx+1:]
	if portStr == "*" {
		return host, 0, nil
	}
	port, err := parseInt(portStr, "port")
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

var (
	pingStatsRe = regexp.MustCompile(`(\d+) packets transmitted, (\d+) (?:packets )?received, ([\d.]+)% packet loss`)
	pingRttRe   = regexp.MustCompile(`rtt min/avg/max/mdev = ([\d.]+)/([\d.]+)/([\d.]+)/([\d.]+) ms`)
)

// ParsePing parses the summary of ping -c. The rtt line is absent at
// 100% loss, so the time fields stay nil in that case.
func ParsePing(stdout string) (records.PingResult, error) {
	stats := pingStatsRe.FindStringSubmatch(stdout)
	if stats == nil {
		return records.PingResult{}, fmt.Errorf("no packet statistics in ping output")
	}

	transmitted, err := parseInt(stats[1], "transmitted")
	if err != nil {
		return records.PingResult{}, err
	}
	received, err := parseInt(stats[2], "received")
	if err != nil {
		return records.PingResult{}, err
	}
	loss, err := parseFloat(stats[3], "loss percent")
	if err != nil {
		return records.PingResult{}, err
	}

	result := records.PingResult{
		Transmitted: transmitted,
		Received:    received,
		LossPercent: loss,
	}

	// "PING example.com (93.184.216.34) ..." first line names the host.
	if first := nonEmptyLines(stdout); len(first) > 0 {
		fields := strings.Fields(first[0])
		if len(fields) >= 2 && fields[0] == "PING" {
			result.Host = fields[1]
		}
	}

	if rtt := pingRttRe.FindStringSubmatch(stdout); rtt != nil {
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			v, convErr := parseFloat(rtt[i+1], "rtt")
			if convErr != nil {
				return records.PingResult{}, convErr
			}
			vals[i] = v
		}
		result.MinMs, result.AvgMs = &vals[0], &vals[1]
		result.MaxMs, result.MdevMs = &vals[2], &vals[3]
	} else if received > 0 {
		return records.PingResult{}, fmt.Errorf("ping reported %d received but no rtt summary", received)
	}

	return result, nil
}

// ParseProcNetDev parses /proc/net/dev: two header lines, then one row
// per interface with 8 receive and 8 transmit counters.
func ParseProcNetDev(stdout string) (records.InterfaceCountersList, error) {
	lines := strings.Split(stdout, "\n")
	if len(lines) < 3 {
		return records.InterfaceCountersList{}, fmt.Errorf("truncated /proc/net/dev output")
	}

	var rows []records.InterfaceCounters
	for _, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, rest, found := strings.Cut(line, ":")
		if !found {
			return records.InterfaceCountersList{}, fmt.Errorf("malformed /proc/net/dev line: %q", line)
		}

		fields := strings.Fields(rest)
		if len(fields) < 16 {
			return records.InterfaceCountersList{}, fmt.Errorf("short /proc/net/dev line: %q", line)
		}

		idx := []int{0, 1, 2, 3, 8, 9, 10, 11}
		vals := make([]int64, len(idx))
		for i, fi := range idx {
			v, err := parseInt64(fields[fi], "interface counter")
			if err != nil {
				return records.InterfaceCountersList{}, err
			}
			vals[i] = v
		}

		rows = append(rows, records.InterfaceCounters{
			Name:       strings.TrimSpace(name),
			BytesIn:    vals[0],
			PacketsIn:  vals[1],
			ErrorsIn:   vals[2],
			DroppedIn:  vals[3],
			BytesOut:   vals[4],
			PacketsOut: vals[5],
			ErrorsOut:  vals[6],
			DroppedOut: vals[7],
		})
	}

	return records.InterfaceCountersList{Interfaces: rows, Count: len(rows)}, nil
}
