package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ipAddrFixture = `1: lo    inet 127.0.0.1/8 scope host lo\       valid_lft forever preferred_lft forever
2: eth0    inet 192.168.1.10/24 brd 192.168.1.255 scope global dynamic eth0\       valid_lft 86000sec preferred_lft 86000sec
2: eth0    inet6 fe80::aabb:ccff:fe00:1/64 scope link \       valid_lft forever preferred_lft forever
`

func TestParseIPAddr(t *testing.T) {
	addrs, err := ParseIPAddr(ipAddrFixture)
	require.NoError(t, err)
	require.Equal(t, 3, addrs.Count)

	lo := addrs.Addresses[0]
	assert.Equal(t, "lo", lo.Interface)
	assert.Equal(t, "127.0.0.1", lo.Address)
	assert.Equal(t, 8, lo.PrefixLen)
	assert.Equal(t, "inet", lo.Family)
	assert.Equal(t, "host", lo.Scope)

	eth := addrs.Addresses[1]
	assert.Equal(t, "eth0", eth.Interface)
	assert.Equal(t, "192.168.1.10", eth.Address)
	assert.Equal(t, 24, eth.PrefixLen)
	assert.Equal(t, "global", eth.Scope)

	v6 := addrs.Addresses[2]
	assert.Equal(t, "inet6", v6.Family)
	assert.Equal(t, "fe80::aabb:ccff:fe00:1", v6.Address)
	assert.Equal(t, 64, v6.PrefixLen)
}

func TestParseIPAddrRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "short line", input: "2: eth0 inet\n"},
		{name: "unknown family", input: "2: eth0 ether aa:bb:cc:dd:ee:ff brd ff:ff:ff:ff:ff:ff\n"},
		{name: "no prefix", input: "2: eth0 inet 192.168.1.10 scope global\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIPAddr(tt.input)
			assert.Error(t, err)
		})
	}
}

const ipRouteFixture = `default via 192.168.1.1 dev eth0 proto dhcp src 192.168.1.10 metric 100
192.168.1.0/24 dev eth0 proto kernel scope link src 192.168.1.10
10.8.0.0/24 via 10.8.0.1 dev tun0 linkdown
`

func TestParseIPRoute(t *testing.T) {
	table, err := ParseIPRoute(ipRouteFixture)
	require.NoError(t, err)
	require.Equal(t, 3, table.Count)

	def := table.Routes[0]
	assert.Equal(t, "default", def.Destination)
	require.NotNil(t, def.Gateway)
	assert.Equal(t, "192.168.1.1", *def.Gateway)
	require.NotNil(t, def.Device)
	assert.Equal(t, "eth0", *def.Device)
	require.NotNil(t, def.Proto)
	assert.Equal(t, "dhcp", *def.Proto)
	require.NotNil(t, def.Metric)
	assert.Equal(t, 100, *def.Metric)

	local := table.Routes[1]
	assert.Equal(t, "192.168.1.0/24", local.Destination)
	assert.Nil(t, local.Gateway, "directly connected routes have no via")
	require.NotNil(t, local.Scope)
	assert.Equal(t, "link", *local.Scope)

	vpn := table.Routes[2]
	require.NotNil(t, vpn.Gateway)
	assert.Equal(t, "10.8.0.1", *vpn.Gateway)
	assert.Nil(t, vpn.Metric, "flag keywords like linkdown are skipped")
}

const ssFixture = `tcp   LISTEN 0      128          0.0.0.0:22          0.0.0.0:*     users:(("sshd",pid=800,fd=3))
tcp   ESTAB  0      0       192.168.1.10:22     192.168.1.50:51000 users:(("sshd",pid=900,fd=4))
udp   UNCONN 0      0            0.0.0.0:68          0.0.0.0:*
`

func TestParseSS(t *testing.T) {
	socks, err := ParseSS(ssFixture)
	require.NoError(t, err)
	require.Equal(t, 3, socks.Count)

	listen := socks.Sockets[0]
	assert.Equal(t, "tcp", listen.Protocol)
	assert.Equal(t, "LISTEN", listen.State)
	assert.Equal(t, "0.0.0.0", listen.LocalAddr)
	assert.Equal(t, 22, listen.LocalPort)
	assert.Equal(t, 0, listen.RemotePort, "unbound peer port * reads as 0")
	require.NotNil(t, listen.PID)
	assert.Equal(t, 800, *listen.PID)
	require.NotNil(t, listen.ProcessName)
	assert.Equal(t, "sshd", *listen.ProcessName)

	estab := socks.Sockets[1]
	assert.Equal(t, "192.168.1.50", estab.RemoteAddr)
	assert.Equal(t, 51000, estab.RemotePort)

	udp := socks.Sockets[2]
	assert.Nil(t, udp.PID, "sockets without a visible owner keep nil process fields")
	assert.Nil(t, udp.ProcessName)
}

func TestParseSSRejectsMalformed(t *testing.T) {
	_, err := ParseSS("tcp LISTEN 0\n")
	assert.Error(t, err)

	_, err = ParseSS("tcp LISTEN x y 0.0.0.0:22 0.0.0.0:*\n")
	assert.Error(t, err)

	_, err = ParseSS("tcp LISTEN 0 0 no-port-here 0.0.0.0:*\n")
	assert.Error(t, err)
}

const pingFixture = `PING example.com (93.184.216.34) 56(84) bytes of data.
64 bytes from 93.184.216.34: icmp_seq=1 ttl=56 time=11.2 ms
64 bytes from 93.184.216.34: icmp_seq=2 ttl=56 time=11.1 ms
64 bytes from 93.184.216.34: icmp_seq=3 ttl=56 time=11.4 ms

--- example.com ping statistics ---
3 packets transmitted, 3 received, 0% packet loss, time 2003ms
rtt min/avg/max/mdev = 11.050/11.237/11.402/0.145 ms
`

func TestParsePing(t *testing.T) {
	result, err := ParsePing(pingFixture)
	require.NoError(t, err)

	assert.Equal(t, "example.com", result.Host)
	assert.Equal(t, 3, result.Transmitted)
	assert.Equal(t, 3, result.Received)
	assert.Equal(t, 0.0, result.LossPercent)
	require.NotNil(t, result.AvgMs)
	assert.Equal(t, 11.237, *result.AvgMs)
	require.NotNil(t, result.MdevMs)
	assert.Equal(t, 0.145, *result.MdevMs)
}

func TestParsePingTotalLoss(t *testing.T) {
	fixture := `PING 10.0.0.99 (10.0.0.99) 56(84) bytes of data.

--- 10.0.0.99 ping statistics ---
3 packets transmitted, 0 received, 100% packet loss, time 2031ms
`
	result, err := ParsePing(fixture)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Transmitted)
	assert.Equal(t, 0, result.Received)
	assert.Equal(t, 100.0, result.LossPercent)
	assert.Nil(t, result.MinMs, "no rtt line at total loss")
	assert.Nil(t, result.AvgMs)
}

func TestParsePingRejectsMalformed(t *testing.T) {
	_, err := ParsePing("no statistics here\n")
	assert.Error(t, err)

	// Replies without an rtt summary is contradictory output.
	_, err = ParsePing("3 packets transmitted, 3 received, 0% packet loss, time 2003ms\n")
	assert.Error(t, err)
}

const procNetDevFixture = `Inter-|   Receive                                                |  Transmit
 face |bytes    packets errs drop fifo frame compressed multicast|bytes    packets errs drop fifo colls carrier compressed
    lo:  123456     789    0    0    0     0          0         0   123456     789    0    0    0     0       0          0
  eth0: 98765432   54321    2    1    0     0          0         0 12345678    9876    0    3    0     0       0          0
`

func TestParseProcNetDev(t *testing.T) {
	counters, err := ParseProcNetDev(procNetDevFixture)
	require.NoError(t, err)
	require.Equal(t, 2, counters.Count)

	eth := counters.Interfaces[1]
	assert.Equal(t, "eth0", eth.Name)
	assert.Equal(t, int64(98765432), eth.BytesIn)
	assert.Equal(t, int64(54321), eth.PacketsIn)
	assert.Equal(t, int64(2), eth.ErrorsIn)
	assert.Equal(t, int64(1), eth.DroppedIn)
	assert.Equal(t, int64(12345678), eth.BytesOut)
	assert.Equal(t, int64(9876), eth.PacketsOut)
	assert.Equal(t, int64(0), eth.ErrorsOut)
	assert.Equal(t, int64(3), eth.DroppedOut)
}

func TestParseProcNetDevRejectsMalformed(t *testing.T) {
	_, err := ParseProcNetDev("just one line\n")
	assert.Error(t, err)

	_, err = ParseProcNetDev("h1\nh2\nno colon here 1 2 3\n")
	assert.Error(t, err)

	_, err = ParseProcNetDev("h1\nh2\neth0: 1 2 3\n")
	assert.Error(t, err, "too few counters")
}
