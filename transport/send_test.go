package transport

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"testing"
	"time"

	"github.com/dnsscience/dnswire/dname"
	"github.com/dnsscience/dnswire/enum"
	"github.com/dnsscience/dnswire/message"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func mustName(t *testing.T, s string) dname.Name {
	t.Helper()
	n, err := dname.New(s)
	require.NoError(t, err)
	return n
}

func sampleQuery(t *testing.T, id uint16) *message.DNSMessage {
	return &message.DNSMessage{
		Header:   message.Header{ID: id, Opcode: enum.OpcodeQuery, RD: true, RCode: enum.RCodeNoError},
		Question: []message.Question{{Name: mustName(t, "example.com."), Type: enum.TypeA, Class: enum.ClassIN}},
	}
}

// echoUDP answers every datagram it receives with a reply carrying the
// same transaction id as the query, simulating a minimal nameserver.
func echoUDP(t *testing.T) string {
	t.Helper()
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	go func() {
		buf := make([]byte, 512)
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		q, err := message.Parse(buf[:n])
		if err != nil {
			return
		}
		reply := &message.DNSMessage{Header: message.Header{ID: q.Header.ID, QR: true, RCode: enum.RCodeNoError}, Question: q.Question}
		data, err := reply.Pack()
		if err != nil {
			return
		}
		conn.WriteToUDP(data, addr)
	}()
	return conn.LocalAddr().String()
}

func echoTCP(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		var lenPrefix [2]byte
		if _, err := io.ReadFull(conn, lenPrefix[:]); err != nil {
			return
		}
		body := make([]byte, binary.BigEndian.Uint16(lenPrefix[:]))
		if _, err := io.ReadFull(conn, body); err != nil {
			return
		}
		q, err := message.Parse(body)
		if err != nil {
			return
		}
		reply := &message.DNSMessage{Header: message.Header{ID: q.Header.ID, QR: true, RCode: enum.RCodeNoError}, Question: q.Question}
		data, err := reply.Pack()
		if err != nil {
			return
		}
		binary.BigEndian.PutUint16(lenPrefix[:], uint16(len(data)))
		conn.Write(lenPrefix[:])
		conn.Write(data)
	}()
	return ln.Addr().String()
}

func TestSendUDPRoundTrip(t *testing.T) {
	addr := echoUDP(t)
	c := NewClient(float64(rate.Inf), 1)
	resp, err := c.Send(context.Background(), sampleQuery(t, 42), addr, false, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, uint16(42), resp.Header.ID)
	require.True(t, resp.Header.QR)
}

func TestSendTCPRoundTrip(t *testing.T) {
	addr := echoTCP(t)
	c := NewClient(float64(rate.Inf), 1)
	resp, err := c.Send(context.Background(), sampleQuery(t, 7), addr, true, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, uint16(7), resp.Header.ID)
}

func TestSendRejectsTransactionIDMismatch(t *testing.T) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	go func() {
		buf := make([]byte, 512)
		_, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		reply := &message.DNSMessage{Header: message.Header{ID: 9999, QR: true, RCode: enum.RCodeNoError}}
		data, _ := reply.Pack()
		conn.WriteToUDP(data, addr)
	}()

	c := NewClient(float64(rate.Inf), 1)
	_, err = c.Send(context.Background(), sampleQuery(t, 1), conn.LocalAddr().String(), false, 2*time.Second)
	require.Error(t, err)
}
