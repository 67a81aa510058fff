package seal_test

import (
	"context"
	"testing"

	"github.com/powledger/powledger/foundation/ledger/seal"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestDigest(t *testing.T) {
	type table struct {
		name          string
		proof         uint64
		previousProof uint64
		index         uint64
		data          string
		digest        string
	}

	tt := []table{
		{"simple", 1, 1, 2, "a", "2a"},
		{"zero quantity", 1, 2, 3, "x", "0x"},
		{"negative quantity", 2, 3, 1, "hello", "-4hello"},
		{"empty data", 5, 2, 3, "", "24"},
		{"large proofs", 100000, 99999, 7, "b", "200006b"},
	}

	t.Log("Given the need to compute the exact work digest bytes.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen computing the digest for case %q.", testID, tst.name)
			{
				digest := string(seal.Digest(tst.proof, tst.previousProof, tst.index, tst.data))
				if digest != tst.digest {
					t.Fatalf("\t%s\tTest %d:\tShould get the expected digest: got %q, exp %q", failed, testID, digest, tst.digest)
				}
				t.Logf("\t%s\tTest %d:\tShould get the expected digest.", success, testID)
			}
		}
	}
}

func TestSolve(t *testing.T) {
	const difficulty = 1

	type table struct {
		previousProof uint64
		index         uint64
		data          string
	}

	tt := []table{
		{1, 2, "a"},
		{1, 2, "b"},
		{42, 3, "some block data"},
		{7, 9, ""},
	}

	t.Log("Given the need to find proofs that satisfy the work condition.")
	{
		var sawNonTrivial bool

		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen sealing prevProof[%d] index[%d] data[%q].", testID, tst.previousProof, tst.index, tst.data)
			{
				proof, err := seal.Solve(context.Background(), tst.previousProof, tst.index, tst.data, difficulty)
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to find a proof: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to find a proof.", success, testID)

				if !seal.Solved(difficulty, proof, tst.previousProof, tst.index, tst.data) {
					t.Fatalf("\t%s\tTest %d:\tShould satisfy the work condition with proof %d.", failed, testID, proof)
				}
				t.Logf("\t%s\tTest %d:\tShould satisfy the work condition.", success, testID)

				again, err := seal.Solve(context.Background(), tst.previousProof, tst.index, tst.data, difficulty)
				if err != nil || again != proof {
					t.Fatalf("\t%s\tTest %d:\tShould find the same proof on a second search: got %d, exp %d", failed, testID, again, proof)
				}
				t.Logf("\t%s\tTest %d:\tShould find the same proof on a second search.", success, testID)

				// The search is an ascending scan, so nothing below the
				// returned proof can satisfy the condition.
				if proof > 1 {
					sawNonTrivial = true
					if seal.Solved(difficulty, proof-1, tst.previousProof, tst.index, tst.data) {
						t.Fatalf("\t%s\tTest %d:\tShould not satisfy the work condition with proof %d.", failed, testID, proof-1)
					}
					t.Logf("\t%s\tTest %d:\tShould not satisfy the work condition one below the proof.", success, testID)
				}
			}
		}

		if !sawNonTrivial {
			t.Fatalf("\t%s\tShould have produced at least one proof greater than 1.", failed)
		}
	}
}

func TestSolveCancelled(t *testing.T) {
	t.Log("Given the need to abandon an unbounded proof search.")
	{
		t.Logf("\tTest 0:\tWhen the context is already cancelled.")
		{
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			if _, err := seal.Solve(ctx, 1, 2, "a", 1); err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould return the context error.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould return the context error.", success)
		}
	}
}

func TestHash(t *testing.T) {
	type record struct {
		Data         string `json:"data"`
		Index        uint64 `json:"index"`
		PreviousHash string `json:"previous_hash"`
		Proof        uint64 `json:"proof"`
		Timestamp    string `json:"timestamp"`
	}

	t.Log("Given the need to hash a record canonically.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same record twice.")
		{
			r := record{"a", 2, "0", 533, "2009-01-03T18:15:05Z"}

			hash := seal.Hash(r)
			if len(hash) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould produce a 64 character hash: got %d characters.", failed, len(hash))
			}
			t.Logf("\t%s\tTest 0:\tShould produce a 64 character hash.", success)

			if seal.Hash(r) != hash {
				t.Fatalf("\t%s\tTest 0:\tShould be reproducible.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould be reproducible.", success)
		}

		t.Logf("\tTest 1:\tWhen any field of the record changes.")
		{
			r := record{"a", 2, "0", 533, "2009-01-03T18:15:05Z"}
			hash := seal.Hash(r)

			mutations := []record{
				{"b", 2, "0", 533, "2009-01-03T18:15:05Z"},
				{"a", 3, "0", 533, "2009-01-03T18:15:05Z"},
				{"a", 2, "1", 533, "2009-01-03T18:15:05Z"},
				{"a", 2, "0", 534, "2009-01-03T18:15:05Z"},
				{"a", 2, "0", 533, "2009-01-03T18:15:06Z"},
			}

			for _, m := range mutations {
				if seal.Hash(m) == hash {
					t.Fatalf("\t%s\tTest 1:\tShould produce a different hash for %+v.", failed, m)
				}
			}
			t.Logf("\t%s\tTest 1:\tShould produce a different hash for every mutation.", success)
		}
	}
}
