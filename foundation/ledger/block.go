package ledger

import (
	"time"

	"github.com/powledger/powledger/foundation/ledger/seal"
)

// Values that make up the fixed genesis block every chain is rooted at.
const (
	genesisIndex = 1
	genesisData  = "genesis block"
	genesisProof = 1
)

// Block represents a single sealed record in the chain. The fields are
// declared in the lexicographic order of their json keys so the canonical
// hash computed over the marshaled form is stable across implementations.
type Block struct {
	Data         string `json:"data"`
	Index        uint64 `json:"index"`
	PreviousHash string `json:"previous_hash"`
	Proof        uint64 `json:"proof"`
	Timestamp    string `json:"timestamp"`
}

// Hash returns the canonical hash for the block, computed over the full
// record including the advisory timestamp.
func (b Block) Hash() string {
	return seal.Hash(b)
}

// newGenesisBlock constructs the trusted root of a chain. It is not mined
// and its proof is a sentinel, not a solution to the work puzzle.
func newGenesisBlock() Block {
	return Block{
		Data:         genesisData,
		Index:        genesisIndex,
		PreviousHash: seal.ZeroHash,
		Proof:        genesisProof,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
}
