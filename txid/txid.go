// Package txid generates DNS message transaction IDs. Message.Header.ID
// must be unpredictable to a blind spoofer (a Kaminsky-style cache
// poisoning attempt depends on guessing it), so it is drawn from
// crypto/rand rather than math/rand.
package txid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// New generates a cryptographically random 16-bit transaction ID.
func New() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("txid: crypto/rand failed: %v", err))
	}
	return binary.BigEndian.Uint16(buf[:])
}
