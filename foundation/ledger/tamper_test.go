package ledger

import (
	"context"
	"testing"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// These tests reach into the chain directly to simulate post-hoc tampering
// that the exported API does not allow.

func TestTamperDetection(t *testing.T) {
	ctx := context.Background()

	t.Log("Given the need to detect tampering with a sealed block.")
	{
		tamper := []struct {
			name string
			mod  func(b *Block)
		}{
			{"data", func(b *Block) { b.Data = "evil" }},
			{"index", func(b *Block) { b.Index++ }},
			{"proof", func(b *Block) { b.Proof++ }},
			{"previous hash", func(b *Block) { b.PreviousHash = "0" }},
			{"timestamp", func(b *Block) { b.Timestamp = "1970-01-01T00:00:00Z" }},
		}

		for testID, tst := range tamper {
			t.Logf("\tTest %d:\tWhen mutating a block's %s after sealing.", testID, tst.name)
			{
				lgr := New(Config{Difficulty: 1})
				for _, data := range []string{"a", "b"} {
					if _, err := lgr.Mine(ctx, data); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to mine block %q: %v", failed, testID, data, err)
					}
				}

				tst.mod(&lgr.chain[1])

				if lgr.IsChainValid() {
					t.Fatalf("\t%s\tTest %d:\tShould report the chain as invalid.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould report the chain as invalid.", success, testID)
			}
		}
	}
}
