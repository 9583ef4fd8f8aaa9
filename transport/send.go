// Package transport implements the synchronous UDP/TCP send helper named
// in the wire-format spec's external interfaces: pack a message, write it
// to a nameserver, read exactly one reply, and unpack it. It is a thin
// wrapper around net.Conn, grounded in the teacher's internal/transport
// client-side dialing and internal/engine.RateLimiter outbound pacing --
// adapted here to the client direction, since the teacher only paces
// inbound queries at a listening server.
package transport

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/dnsscience/dnswire/message"
	"golang.org/x/time/rate"
)

// Client sends DNS messages to a single upstream nameserver over UDP or
// TCP and waits for one reply. It performs no retries and no recursion;
// callers inspect the reply's Header.TC and may re-issue over TCP
// themselves, exactly as the external "send" interface specifies.
type Client struct {
	limiter *rate.Limiter
}

// NewClient builds a Client whose outbound sends are paced by a token
// bucket: queriesPerSecond replenishment, burst simultaneous sends
// allowed before blocking. A nil-equivalent unlimited client is obtained
// by passing rate.Inf as queriesPerSecond.
func NewClient(queriesPerSecond float64, burst int) *Client {
	return &Client{limiter: rate.NewLimiter(rate.Limit(queriesPerSecond), burst)}
}

// Send packs msg, sends it to addr (host:port), and returns the parsed
// reply. tcp selects TCP framing (a 16-bit big-endian length prefix)
// instead of a single UDP datagram, per RFC 1035 §4.2.
func (c *Client) Send(ctx context.Context, msg *message.DNSMessage, addr string, tcp bool, timeout time.Duration) (*message.DNSMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("transport: rate limit wait: %w", err)
		}
	}

	data, err := msg.Pack()
	if err != nil {
		return nil, fmt.Errorf("transport: packing query: %w", err)
	}

	network := "udp"
	if tcp {
		network = "tcp"
	}

	var d net.Dialer
	dialCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	conn, err := d.DialContext(dialCtx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("transport: dialing %s %s: %w", network, addr, err)
	}
	defer conn.Close()

	if timeout > 0 {
		deadline := time.Now().Add(timeout)
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("transport: setting deadline: %w", err)
		}
	}

	var reply []byte
	if tcp {
		reply, err = sendTCP(conn, data)
	} else {
		reply, err = sendUDP(conn, data)
	}
	if err != nil {
		return nil, err
	}

	resp, err := message.Parse(reply)
	if err != nil {
		return nil, fmt.Errorf("transport: parsing reply: %w", err)
	}
	if resp.Header.ID != msg.Header.ID {
		return nil, fmt.Errorf("transport: response transaction id %d does not match query id %d", resp.Header.ID, msg.Header.ID)
	}
	return resp, nil
}

func sendUDP(conn net.Conn, query []byte) ([]byte, error) {
	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf("transport: writing UDP datagram: %w", err)
	}
	buf := make([]byte, 65535)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("transport: reading UDP reply: %w", err)
	}
	return buf[:n], nil
}

func sendTCP(conn net.Conn, query []byte) ([]byte, error) {
	var lenPrefix [2]byte
	binary.BigEndian.PutUint16(lenPrefix[:], uint16(len(query)))
	if _, err := conn.Write(lenPrefix[:]); err != nil {
		return nil, fmt.Errorf("transport: writing TCP length prefix: %w", err)
	}
	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf("transport: writing TCP query: %w", err)
	}

	if _, err := io.ReadFull(conn, lenPrefix[:]); err != nil {
		return nil, fmt.Errorf("transport: reading TCP reply length: %w", err)
	}
	replyLen := binary.BigEndian.Uint16(lenPrefix[:])
	reply := make([]byte, replyLen)
	if _, err := io.ReadFull(conn, reply); err != nil {
		return nil, fmt.Errorf("transport: reading TCP reply body: %w", err)
	}
	return reply, nil
}
