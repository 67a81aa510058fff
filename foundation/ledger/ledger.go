// Package ledger implements an append-only, hash-linked chain of blocks
// where every block after the genesis is sealed by a proof-of-work puzzle.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/powledger/powledger/foundation/ledger/seal"
)

// DefaultDifficulty is the number of leading '0' hex characters a work
// digest must hash to. Tests construct ledgers with a lower value to keep
// the sealing searches fast.
const DefaultDifficulty = 4

// EventHandler defines a function that is called when events occur in the
// processing of mining and repairing blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to construct a ledger.
type Config struct {
	Difficulty int
	EvHandler  EventHandler
}

// Ledger manages the chain of blocks. A single write lock serializes the
// mutation operations so the ledger can sit behind a multi-request server,
// and reads share a read lock so validation never observes a chain
// mid-mutation.
type Ledger struct {
	difficulty int
	evHandler  EventHandler

	mu    sync.RWMutex
	chain []Block
}

// New constructs a ledger rooted at a fresh genesis block.
func New(cfg Config) *Ledger {
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	difficulty := cfg.Difficulty
	if difficulty <= 0 {
		difficulty = DefaultDifficulty
	}

	return &Ledger{
		difficulty: difficulty,
		evHandler:  ev,
		chain:      []Block{newGenesisBlock()},
	}
}

// Difficulty returns the number of leading '0' hex characters required of
// a work digest's hash.
func (l *Ledger) Difficulty() int {
	return l.difficulty
}

// Mine seals a new block carrying the specified data and appends it to the
// chain. The call blocks for the duration of the proof search, which is
// unbounded; cancel the context to abandon it. Mining never fails on valid
// input, only on cancellation.
func (l *Ledger) Mine(ctx context.Context, data string) (Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lastBlock := l.chain[len(l.chain)-1]
	index := uint64(len(l.chain)) + 1

	l.evHandler("ledger: mine: sealing: index[%d]", index)

	proof, err := seal.Solve(ctx, lastBlock.Proof, index, data, l.difficulty)
	if err != nil {
		return Block{}, err
	}

	block := Block{
		Data:         data,
		Index:        index,
		PreviousHash: lastBlock.Hash(),
		Proof:        proof,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	l.chain = append(l.chain, block)

	l.evHandler("ledger: mine: sealed: index[%d] proof[%d]", index, proof)

	return block, nil
}

// ValidateBlock checks a block links to its predecessor and that its proof
// satisfies the work condition. Pure predicate, no mutation.
func (l *Ledger) ValidateBlock(block Block, previousBlock Block) bool {
	if block.PreviousHash != previousBlock.Hash() {
		return false
	}

	return seal.Solved(l.difficulty, block.Proof, previousBlock.Proof, block.Index, block.Data)
}

// IsChainValid checks every consecutive pair of blocks in the chain,
// short-circuiting on the first failure. The genesis block is a trusted
// root and is not itself validated.
func (l *Ledger) IsChainValid() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := 1; i < len(l.chain); i++ {
		if !l.ValidateBlock(l.chain[i], l.chain[i-1]) {
			return false
		}
	}

	return true
}

// Delete removes the first block whose proof matches the specified value
// and repairs the suffix: every block after the removal point is re-linked
// to its new predecessor and re-sealed with a fresh proof search, keeping
// its original index and data. An unknown proof is a silent no-op. A
// cancellation during the repair returns the context error and leaves the
// chain unchanged. The genesis block is excluded from the scan, so its
// sentinel proof can never match even if a later block mined the same value.
func (l *Ledger) Delete(ctx context.Context, proof uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	at := -1
	for i := 1; i < len(l.chain); i++ {
		if l.chain[i].Proof == proof {
			at = i
			break
		}
	}

	if at == -1 {
		l.evHandler("ledger: delete: proof[%d] not found", proof)
		return nil
	}

	l.evHandler("ledger: delete: removing: index[%d] proof[%d]", l.chain[at].Index, proof)

	// Re-seal the suffix into a scratch copy, front to back, so each block
	// links to the already repaired state of its new predecessor. The chain
	// is only swapped once every search has succeeded, so a cancellation
	// mid-repair leaves it untouched. Deleting the last block leaves nothing
	// to repair. Indexes are never renumbered: they record mint order, and
	// the unchanged index feeds the fresh work digest.
	suffix := make([]Block, len(l.chain)-at-1)
	copy(suffix, l.chain[at+1:])

	previousBlock := l.chain[at-1]
	for i := range suffix {
		l.evHandler("ledger: delete: resealing: index[%d]", suffix[i].Index)

		newProof, err := seal.Solve(ctx, previousBlock.Proof, suffix[i].Index, suffix[i].Data, l.difficulty)
		if err != nil {
			return err
		}

		suffix[i].PreviousHash = previousBlock.Hash()
		suffix[i].Proof = newProof
		previousBlock = suffix[i]
	}

	l.chain = append(l.chain[:at], suffix...)

	return nil
}

// Clear truncates the chain down to the genesis block. Irreversible.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.evHandler("ledger: clear: truncating: height[%d]", len(l.chain))
	l.chain = l.chain[:1]
}

// LastBlock returns the most recently appended block.
func (l *Ledger) LastBlock() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.chain[len(l.chain)-1]
}

// Blocks returns a copy of the chain in order.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	chain := make([]Block, len(l.chain))
	copy(chain, l.chain)
	return chain
}

// Height returns the number of blocks in the chain, genesis included.
func (l *Ledger) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}
