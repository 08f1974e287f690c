package mfe

import "testing"

func TestCacheReturnsIdenticalResultOnRepeatedFold(t *testing.T) {
	c := NewCache()
	first, err := c.Fold("GGGGAAAACCCC", DefaultOptions())
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	second, err := c.Fold("GGGGAAAACCCC", DefaultOptions())
	if err != nil {
		t.Fatalf("Fold (cached): %v", err)
	}
	if first != second {
		t.Errorf("expected the cached call to return the same *Result pointer, got %p and %p", first, second)
	}
}

func TestCacheDistinguishesOptions(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	b.DangleModel = DangleNone

	keyA := cacheKey("GGGGAAAACCCC", a, false)
	keyB := cacheKey("GGGGAAAACCCC", b, false)
	if keyA == keyB {
		t.Errorf("expected different cache keys for different options")
	}
}

func TestCacheDistinguishesCircular(t *testing.T) {
	keyLinear := cacheKey("GGGGAAAACCCC", DefaultOptions(), false)
	keyCircular := cacheKey("GGGGAAAACCCC", DefaultOptions(), true)
	if keyLinear == keyCircular {
		t.Errorf("expected different cache keys for linear vs circular folds of the same sequence")
	}
}
