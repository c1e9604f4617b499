package textmeasure

import (
	"strconv"
	"testing"
)

// countingMeasurer counts how often the inner measurer actually shapes.
type countingMeasurer struct {
	calls int
}

func (m *countingMeasurer) Measure(text string, size float64) Size {
	m.calls++
	return Size{Width: float64(len(text)), Height: size}
}

func TestCachedMeasurerMemoizes(t *testing.T) {
	inner := &countingMeasurer{}
	c := NewCachedMeasurer(inner, 10)

	first := c.Measure("hello", 16)
	second := c.Measure("hello", 16)

	if first != second {
		t.Errorf("results differ: %v vs %v", first, second)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("stats = (%d, %d), want (1, 1)", hits, misses)
	}
}

func TestCachedMeasurerKeyIncludesSize(t *testing.T) {
	inner := &countingMeasurer{}
	c := NewCachedMeasurer(inner, 10)

	c.Measure("hello", 16)
	c.Measure("hello", 24)

	if inner.calls != 2 {
		t.Errorf("inner calls = %d, want 2: sizes are distinct keys", inner.calls)
	}
}

func TestCachedMeasurerEvicts(t *testing.T) {
	inner := &countingMeasurer{}
	c := NewCachedMeasurer(inner, 3)

	for i := 0; i < 5; i++ {
		c.Measure(strconv.Itoa(i), 16)
	}

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want capacity 3", c.Len())
	}

	// "0" and "1" were evicted; remeasuring them shapes again.
	before := inner.calls
	c.Measure("0", 16)
	if inner.calls != before+1 {
		t.Error("evicted entry should be shaped again")
	}

	// "4" is still resident.
	before = inner.calls
	c.Measure("4", 16)
	if inner.calls != before {
		t.Error("resident entry should not be shaped again")
	}
}

func TestCachedMeasurerCapacityFallback(t *testing.T) {
	c := NewCachedMeasurer(&countingMeasurer{}, 0)
	for i := 0; i < DefaultCacheCapacity+10; i++ {
		c.Measure(strconv.Itoa(i), 16)
	}
	if c.Len() != DefaultCacheCapacity {
		t.Errorf("Len() = %d, want %d", c.Len(), DefaultCacheCapacity)
	}
}
