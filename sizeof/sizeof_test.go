package sizeof

import (
	"encoding/json"
	"testing"
)

func TestStringIsByteLength(t *testing.T) {
	if n := Estimate("hello"); n != 5 {
		t.Fatalf("expected 5, got %d", n)
	}
	// Multi-byte runes count as their UTF-8 encoding, not rune count.
	if n := Estimate("héllo"); n != 6 {
		t.Fatalf("expected 6, got %d", n)
	}
	if n := Estimate(""); n != 0 {
		t.Fatalf("expected 0 for empty string, got %d", n)
	}
}

func TestNamedStringType(t *testing.T) {
	type userID string
	if n := Estimate(userID("abcd")); n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}

func TestByteSlice(t *testing.T) {
	if n := Estimate([]byte{1, 2, 3}); n != 3 {
		t.Fatalf("expected 3, got %d", n)
	}
}

func TestScalars(t *testing.T) {
	for _, v := range []any{42, int64(42), uint8(1), 3.14, true} {
		if n := Estimate(v); n != ScalarSize {
			t.Fatalf("expected %d for %T, got %d", ScalarSize, v, n)
		}
	}
	if n := Estimate(complex(1, 2)); n != 2*ScalarSize {
		t.Fatalf("expected %d for complex, got %d", 2*ScalarSize, n)
	}
}

func TestContainersSumRecursively(t *testing.T) {
	// 3 strings of 2 bytes each.
	if n := Estimate([]string{"aa", "bb", "cc"}); n != 6 {
		t.Fatalf("expected 6, got %d", n)
	}

	// Map counts keys and values: (2 + 8) * 2.
	m := map[string]int{"k1": 1, "k2": 2}
	if n := Estimate(m); n != 2*(2+ScalarSize) {
		t.Fatalf("expected %d, got %d", 2*(2+ScalarSize), n)
	}

	// Nesting just keeps summing.
	nested := map[string][]string{"outer": {"aaaa"}}
	if n := Estimate(nested); n != 5+4 {
		t.Fatalf("expected 9, got %d", n)
	}
}

func TestNilIsFree(t *testing.T) {
	if n := Estimate(nil); n != 0 {
		t.Fatalf("expected 0 for nil, got %d", n)
	}
	var p *int
	if n := Estimate(p); n != 0 {
		t.Fatalf("expected 0 for nil pointer, got %d", n)
	}
}

func TestPointerFollowsElement(t *testing.T) {
	s := "abcdef"
	if n := Estimate(&s); n != 6 {
		t.Fatalf("expected 6 through pointer, got %d", n)
	}
}

func TestStructFallsBackToSerializedForm(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	v := payload{Name: "alice", Age: 30}

	b, _ := json.Marshal(v)
	if n := Estimate(v); n != int64(len(b)) {
		t.Fatalf("expected serialized length %d, got %d", len(b), n)
	}
}

func TestUnserializableGetsDefault(t *testing.T) {
	// Channels cannot be marshaled; the estimator must still answer.
	if n := Estimate(make(chan int)); n != DefaultEstimate {
		t.Fatalf("expected default estimate, got %d", n)
	}
	if n := Estimate(func() {}); n != DefaultEstimate {
		t.Fatalf("expected default estimate for func, got %d", n)
	}
}

func TestDeepNestingTerminates(t *testing.T) {
	// Build a structure deeper than the walk limit; the estimator
	// must answer with SOME positive value instead of recursing away.
	v := any("leaf")
	for i := 0; i < 100; i++ {
		v = []any{v}
	}
	if n := Estimate(v); n <= 0 {
		t.Fatalf("expected positive estimate, got %d", n)
	}
}
