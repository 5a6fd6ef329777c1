package heap

// An indexed min-heap with float64 priorities, used as the frontier for the
// shortest-path searches. Values are small non-negative ints (node ids), so
// the value -> heap-index lookup is kept in a map to support DecreaseKey.
//
// The sift functions are based on the original Go implementation in the
// container/heap package. The original Go implementation is licensed under
// the BSD 3-Clause License, allowing use with modification, provided that
// the following is included:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

type item struct {
	value    int
	priority float64
}

// ImplicitHeapMin is a binary min-heap ordered by priority.
type ImplicitHeapMin struct {
	items   []item
	indexOf map[int]int // value -> index in items
}

// NewImplicitHeapMin creates an empty min-heap.
func NewImplicitHeapMin() *ImplicitHeapMin {
	return &ImplicitHeapMin{indexOf: make(map[int]int)}
}

// Len returns the number of items in the heap.
func (h *ImplicitHeapMin) Len() int {
	return len(h.items)
}

// ContainsValue reports whether the value is currently in the heap.
func (h *ImplicitHeapMin) ContainsValue(value int) bool {
	_, ok := h.indexOf[value]
	return ok
}

// Push adds a value with the given priority. If the value is already in the
// heap its priority is updated instead.
func (h *ImplicitHeapMin) Push(priority float64, value int) {
	if i, ok := h.indexOf[value]; ok {
		old := h.items[i].priority
		h.items[i].priority = priority
		if priority < old {
			h.up(i)
		} else {
			h.down(i, len(h.items))
		}
		return
	}
	h.items = append(h.items, item{value: value, priority: priority})
	h.indexOf[value] = len(h.items) - 1
	h.up(len(h.items) - 1)
}

// Pop removes and returns the value with the smallest priority. The second
// return value is false if the heap is empty.
func (h *ImplicitHeapMin) Pop() (int, bool) {
	if len(h.items) == 0 {
		return 0, false
	}
	n := len(h.items) - 1
	h.swap(0, n)
	top := h.items[n]
	h.items = h.items[:n]
	delete(h.indexOf, top.value)
	if n > 0 {
		h.down(0, n)
	}
	return top.value, true
}

// DecreaseKey lowers the priority of a value already in the heap. It is a
// no-op if the value is absent or the new priority is not lower.
func (h *ImplicitHeapMin) DecreaseKey(value int, priority float64) {
	i, ok := h.indexOf[value]
	if !ok || priority >= h.items[i].priority {
		return
	}
	h.items[i].priority = priority
	h.up(i)
}

func (h *ImplicitHeapMin) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.indexOf[h.items[i].value] = i
	h.indexOf[h.items[j].value] = j
}

func (h *ImplicitHeapMin) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || h.items[j].priority >= h.items[i].priority {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *ImplicitHeapMin) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.items[j2].priority < h.items[j1].priority {
			j = j2 // = 2*i + 2  // right child
		}
		if h.items[j].priority >= h.items[i].priority {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
