// Package redact produces short, non-reversible correlation tags for
// secrets that must never appear in logs, but whose repeated occurrence
// across log lines is still useful for debugging (e.g. "this is the same
// account failing every time" without revealing which account).
package redact

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// tagLen is the number of hex characters in a Tag, chosen short enough to
// scan in a log line but long enough that collisions between distinct
// accounts in one run are vanishingly unlikely.
const tagLen = 12

// Tag hashes secret with BLAKE2b-256 and returns the first tagLen hex
// characters of the digest. The same secret always produces the same
// tag, so repeated handshake attempts against one account correlate in
// logs; the tag alone is not meant to be reversible.
func Tag(secret string) string {
	sum := blake2b.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])[:tagLen]
}
