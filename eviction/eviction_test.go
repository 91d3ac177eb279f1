package eviction

import "testing"

//
// ================= LRU =================
//

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.OnGet("a") // a is now most recent; b is the oldest read

	if k, ok := p.Evict(); !ok || k != "b" {
		t.Fatalf("expected b evicted, got %q (ok=%v)", k, ok)
	}
	if k, ok := p.Evict(); !ok || k != "c" {
		t.Fatalf("expected c evicted, got %q (ok=%v)", k, ok)
	}
	if k, ok := p.Evict(); !ok || k != "a" {
		t.Fatalf("expected a evicted last, got %q (ok=%v)", k, ok)
	}
	if _, ok := p.Evict(); ok {
		t.Fatal("expected empty policy to report no victim")
	}
}

func TestLRURemoveKeepsOrderConsistent(t *testing.T) {
	p := New(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.Remove("a")

	if p.Len() != 2 {
		t.Fatalf("expected 2 tracked, got %d", p.Len())
	}
	if k, _ := p.Evict(); k != "b" {
		t.Fatalf("expected b after removing a, got %q", k)
	}
}

func TestLRUIgnoresUntrackedGets(t *testing.T) {
	p := New(LRU)

	p.OnGet("ghost")
	p.Remove("ghost")
	if p.Len() != 0 {
		t.Fatalf("expected nothing tracked, got %d", p.Len())
	}
}

//
// ================= EMPTY-STRING KEY =================
//

// The empty string is a legal key and must be evictable like any
// other; only the boolean may signal an empty policy.
func TestPoliciesTreatEmptyKeyAsVictim(t *testing.T) {
	for _, typ := range []PolicyType{LRU, LFU, FIFO} {
		p := New(typ)

		p.OnPut("")

		k, ok := p.Evict()
		if !ok {
			t.Fatalf("%s: expected the empty key as a victim, got none", typ)
		}
		if k != "" {
			t.Fatalf("%s: expected empty key evicted, got %q", typ, k)
		}
		if p.Len() != 0 {
			t.Fatalf("%s: expected nothing tracked after evicting, got %d", typ, p.Len())
		}
		if _, ok := p.Evict(); ok {
			t.Fatalf("%s: expected no victim from empty policy", typ)
		}
	}
}

func TestLRUEmptyKeyKeepsItsPlaceInOrder(t *testing.T) {
	p := New(LRU)

	p.OnPut("")
	p.OnPut("a")
	p.OnGet("") // the empty key is now most recent

	if k, ok := p.Evict(); !ok || k != "a" {
		t.Fatalf("expected a evicted, got %q (ok=%v)", k, ok)
	}
	if k, ok := p.Evict(); !ok || k != "" {
		t.Fatalf("expected empty key evicted last, got %q (ok=%v)", k, ok)
	}
}

//
// ================= FIFO =================
//

func TestFIFOEvictsInInsertionOrder(t *testing.T) {
	p := New(FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a") // reads must not matter

	if k, _ := p.Evict(); k != "a" {
		t.Fatalf("expected oldest insertion a, got %q", k)
	}
	if k, _ := p.Evict(); k != "b" {
		t.Fatalf("expected b, got %q", k)
	}
}

//
// ================= LFU =================
//

func TestLFUEvictsLeastFrequentlyUsed(t *testing.T) {
	p := New(LFU)

	p.OnPut("hot")
	p.OnPut("cold")
	p.OnGet("hot")
	p.OnGet("hot")

	if k, _ := p.Evict(); k != "cold" {
		t.Fatalf("expected cold evicted, got %q", k)
	}
	if k, _ := p.Evict(); k != "hot" {
		t.Fatalf("expected hot evicted once alone, got %q", k)
	}
}

func TestLFUSurvivesDrainingTheMinBucket(t *testing.T) {
	p := New(LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a")
	p.OnGet("b") // both now at count 2, bucket 1 is gone

	if _, ok := p.Evict(); !ok {
		t.Fatal("expected a victim while keys remain")
	}
	if _, ok := p.Evict(); !ok {
		t.Fatal("expected the last key as victim")
	}
	if p.Len() != 0 {
		t.Fatalf("expected empty policy, got %d tracked", p.Len())
	}
}

func TestLFURemoveLastMinKey(t *testing.T) {
	p := New(LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("b")
	p.Remove("a") // the only count-1 key disappears

	if k, _ := p.Evict(); k != "b" {
		t.Fatalf("expected b evictable after min bucket drained, got %q", k)
	}
}

//
// ================= FACTORY =================
//

func TestFactoryDefaultsToLRU(t *testing.T) {
	p := New("")
	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a")
	if k, _ := p.Evict(); k != "b" {
		t.Fatalf("expected LRU behavior from default policy, got %q", k)
	}
}

func TestFactoryPanicsOnUnknownPolicy(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown policy type")
		}
	}()
	New("MRU")
}
