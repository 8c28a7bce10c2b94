package bridge

import (
	"errors"
	"testing"
)

func TestHeapAllocator(t *testing.T) {
	a := NewHeapAllocator()

	buf, err := a.Acquire(LineCapacity)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if len(buf) != 0 || cap(buf) != LineCapacity {
		t.Errorf("Acquire() len=%d cap=%d", len(buf), cap(buf))
	}
	buf = append(buf, "dirty"...)
	a.Release(buf)

	again, err := a.Acquire(LineCapacity)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("recycled buffer has length %d", len(again))
	}
	a.Release(again)

	small, err := a.Acquire(100)
	if err != nil || cap(small) < 100 {
		t.Errorf("Acquire(100) = cap %d, %v", cap(small), err)
	}
	a.Release(small)

	if _, err := a.Acquire(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Acquire(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestHeapAllocator_ZeroValue(t *testing.T) {
	var a HeapAllocator
	buf, err := a.Acquire(LineCapacity)
	if err != nil || cap(buf) != LineCapacity {
		t.Fatalf("zero HeapAllocator: cap %d, %v", cap(buf), err)
	}
	a.Release(buf)
}

func TestBoundedAllocator(t *testing.T) {
	a := NewBoundedAllocator(nil, 2)

	b1, err := a.Acquire(LineCapacity)
	if err != nil {
		t.Fatalf("first Acquire() error = %v", err)
	}
	b2, err := a.Acquire(LineCapacity)
	if err != nil {
		t.Fatalf("second Acquire() error = %v", err)
	}
	if _, err := a.Acquire(LineCapacity); !errors.Is(err, ErrAllocatorExhausted) {
		t.Errorf("third Acquire() error = %v, want ErrAllocatorExhausted", err)
	}
	if a.Outstanding() != 2 {
		t.Errorf("Outstanding() = %d, want 2", a.Outstanding())
	}

	a.Release(b1)
	if _, err := a.Acquire(LineCapacity); err != nil {
		t.Errorf("Acquire() after Release error = %v", err)
	}
	a.Release(b2)
}

func TestBoundedAllocator_Zero(t *testing.T) {
	for _, limit := range []int{0, -3} {
		a := NewBoundedAllocator(nil, limit)
		if _, err := a.Acquire(LineCapacity); !errors.Is(err, ErrAllocatorExhausted) {
			t.Errorf("limit=%d: Acquire() error = %v", limit, err)
		}
	}
}

func TestBoundedAllocator_InnerFailureFreesSlot(t *testing.T) {
	a := NewBoundedAllocator(nil, 1)
	if _, err := a.Acquire(-1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Acquire(-1) error = %v", err)
	}
	if a.Outstanding() != 0 {
		t.Errorf("failed Acquire kept a slot")
	}
}
