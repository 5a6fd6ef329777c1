package heap

import "testing"

func TestPopOrder(t *testing.T) {
	h := NewImplicitHeapMin()
	h.Push(5.0, 1)
	h.Push(1.5, 2)
	h.Push(3.25, 3)
	h.Push(0.5, 4)

	want := []int{4, 2, 3, 1}
	for _, expected := range want {
		v, ok := h.Pop()
		if !ok {
			t.Fatal("heap empty before all values popped")
		}
		if v != expected {
			t.Errorf("popped %d, want %d", v, expected)
		}
	}
	if _, ok := h.Pop(); ok {
		t.Error("expected empty heap")
	}
}

func TestDecreaseKey(t *testing.T) {
	h := NewImplicitHeapMin()
	h.Push(10, 1)
	h.Push(20, 2)
	h.Push(30, 3)

	h.DecreaseKey(3, 5)
	if v, _ := h.Pop(); v != 3 {
		t.Errorf("popped %d after DecreaseKey, want 3", v)
	}

	// Raising a priority through DecreaseKey must be ignored.
	h.DecreaseKey(1, 100)
	if v, _ := h.Pop(); v != 1 {
		t.Errorf("popped %d, want 1", v)
	}
}

func TestPushExistingUpdates(t *testing.T) {
	h := NewImplicitHeapMin()
	h.Push(10, 7)
	h.Push(2, 7)
	if h.Len() != 1 {
		t.Fatalf("Len = %d, want 1", h.Len())
	}
	if !h.ContainsValue(7) {
		t.Fatal("value 7 missing")
	}
	v, _ := h.Pop()
	if v != 7 {
		t.Errorf("popped %d, want 7", v)
	}
	if h.ContainsValue(7) {
		t.Error("value still reported after pop")
	}
}
