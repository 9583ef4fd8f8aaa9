package edns

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/dchest/siphash"
)

// DNS Cookies (RFC 7873, extended by RFC 9018) let a client and server
// recognize repeat traffic from each other without holding per-client
// state, mitigating off-path spoofing. This follows BIND 9's SipHash-2-4
// construction: https://kb.isc.org/docs/aa-01387

var (
	ErrShortClientCookie = errors.New("edns: client cookie must be exactly 8 bytes")
	ErrBadServerCookie   = errors.New("edns: server cookie must be 8 to 32 bytes")
	ErrCookieMismatch    = errors.New("edns: server cookie does not match client and secret")
)

const (
	clientCookieSize      = 8
	cookieVersion         = 1
	secretRotationInterval = 24 * time.Hour
)

// CookieManager generates and validates server cookies for this process.
// A rolling current/previous secret pair lets cookies issued just before a
// rotation still validate for one more rotation interval.
type CookieManager struct {
	mu             sync.RWMutex
	currentSecret  [16]byte
	previousSecret [16]byte
}

// NewCookieManager seeds a manager with a fresh random secret.
func NewCookieManager() (*CookieManager, error) {
	m := &CookieManager{}
	if _, err := rand.Read(m.currentSecret[:]); err != nil {
		return nil, err
	}
	m.previousSecret = m.currentSecret
	return m, nil
}

// RotateSecret replaces the current secret with a new random one, keeping
// the old one around so cookies issued under it still validate.
func (m *CookieManager) RotateSecret() error {
	var next [16]byte
	if _, err := rand.Read(next[:]); err != nil {
		return err
	}
	m.mu.Lock()
	m.previousSecret = m.currentSecret
	m.currentSecret = next
	m.mu.Unlock()
	return nil
}

// RotateForever rotates the secret on secretRotationInterval until stop is
// closed. The caller owns the goroutine this runs in.
func (m *CookieManager) RotateForever(stop <-chan struct{}) {
	ticker := time.NewTicker(secretRotationInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.RotateSecret()
		case <-stop:
			return
		}
	}
}

// ServerCookie computes a server cookie for clientCookie and clientIP as of
// now, under the current secret (RFC 9018 §4's SipHash-2-4 construction).
func (m *CookieManager) ServerCookie(clientCookie [8]byte, clientIP []byte) [8]byte {
	m.mu.RLock()
	secret := m.currentSecret
	m.mu.RUnlock()
	return computeServerCookie(secret, clientCookie, clientIP, time.Now())
}

// ValidateServerCookie reports whether serverCookie matches what this
// manager would have issued for clientCookie/clientIP, under either the
// current or the immediately preceding secret.
func (m *CookieManager) ValidateServerCookie(clientCookie [8]byte, serverCookie []byte, clientIP []byte) error {
	if len(serverCookie) != 8 {
		return ErrBadServerCookie
	}
	m.mu.RLock()
	current, previous := m.currentSecret, m.previousSecret
	m.mu.RUnlock()

	now := time.Now()
	if want := computeServerCookie(current, clientCookie, clientIP, now); subtle.ConstantTimeCompare(serverCookie, want[:]) == 1 {
		return nil
	}
	if want := computeServerCookie(previous, clientCookie, clientIP, now); subtle.ConstantTimeCompare(serverCookie, want[:]) == 1 {
		return nil
	}
	return ErrCookieMismatch
}

func computeServerCookie(secret [16]byte, clientCookie [8]byte, clientIP []byte, t time.Time) [8]byte {
	var out [8]byte
	h := siphash.New(secret[:])
	h.Write(clientCookie[:])
	h.Write(clientIP)
	h.Write([]byte{cookieVersion, 0, 0, 0})
	var ts [4]byte
	binary.BigEndian.PutUint32(ts[:], uint32(t.Unix()))
	h.Write(ts[:])
	binary.LittleEndian.PutUint64(out[:], h.Sum64())
	return out
}

// ParseCookie splits a COOKIE option's value into its mandatory 8-byte
// client cookie and optional 8-32 byte server cookie (RFC 7873 §4).
func ParseCookie(data []byte) (clientCookie [8]byte, serverCookie []byte, err error) {
	if len(data) < clientCookieSize {
		return clientCookie, nil, ErrShortClientCookie
	}
	copy(clientCookie[:], data[:clientCookieSize])
	if len(data) == clientCookieSize {
		return clientCookie, nil, nil
	}
	serverCookie = append([]byte(nil), data[clientCookieSize:]...)
	if len(serverCookie) < 8 || len(serverCookie) > 32 {
		return clientCookie, nil, ErrBadServerCookie
	}
	return clientCookie, serverCookie, nil
}

// FormatCookie assembles a COOKIE option value from its parts.
func FormatCookie(clientCookie [8]byte, serverCookie []byte) []byte {
	out := make([]byte, clientCookieSize+len(serverCookie))
	copy(out, clientCookie[:])
	copy(out[clientCookieSize:], serverCookie)
	return out
}
