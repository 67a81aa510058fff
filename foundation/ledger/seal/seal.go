// Package seal implements the proof-of-work sealing and hashing primitives
// for the ledger.
package seal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math/big"
)

// ZeroHash is the previous-hash reference carried by the genesis block,
// which has no predecessor.
const ZeroHash = "0"

// Digest returns the exact byte sequence that is hashed to check the work
// condition: the decimal representation of proof² − previousProof² + index
// immediately followed by the raw data bytes, with no separator. The
// arithmetic is done with big integers so a proof smaller than its
// predecessor's produces the same signed decimal string on every platform.
func Digest(proof uint64, previousProof uint64, index uint64, data string) []byte {
	p := new(big.Int).SetUint64(proof)
	p.Mul(p, p)

	pp := new(big.Int).SetUint64(previousProof)
	pp.Mul(pp, pp)

	p.Sub(p, pp)
	p.Add(p, new(big.Int).SetUint64(index))

	return append([]byte(p.String()), data...)
}

// Solved reports whether the specified proof satisfies the work condition
// for the given predecessor proof, index, and data.
func Solved(difficulty int, proof uint64, previousProof uint64, index uint64, data string) bool {
	hash := sha256.Sum256(Digest(proof, previousProof, index, data))
	return isHashSolved(difficulty, hex.EncodeToString(hash[:]))
}

// Solve performs the work of finding the smallest proof that satisfies the
// work condition. The search is a deterministic ascending scan starting at
// proof 1 so the same inputs always seal to the same proof. The search has
// no upper bound; the only way out short of a solution is cancelling the
// context.
func Solve(ctx context.Context, previousProof uint64, index uint64, data string, difficulty int) (uint64, error) {
	var proof uint64 = 1

	for {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}

		if Solved(difficulty, proof, previousProof, index, data) {
			return proof, nil
		}

		proof++
	}
}

// Hash returns the canonical hash of the value: the value is marshaled to
// JSON and the sha256 sum is returned as a bare 64 character hex string.
// Callers must declare their struct fields in the lexicographic order of
// the json keys so the marshaled form is the canonical one.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// isHashSolved checks the hash complies with the work rules. We need to
// match a difficulty number of leading '0' hex characters.
func isHashSolved(difficulty int, hash string) bool {
	const match = "00000000000000000"

	if difficulty > len(match) {
		difficulty = len(match)
	}

	if len(hash) != 64 {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
