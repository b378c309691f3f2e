package chained

import (
	"errors"
	"testing"
)

func intEq(a, b int) bool {
	return a == b
}

func TestListOfPushPopOrder(t *testing.T) {
	l := NewListOf[int]()

	for _, v := range []int{1, 2, 3} {
		if err := l.PushFront(v); err != nil {
			t.Fatalf("push front failed: %v", err)
		}
	}
	for _, v := range []int{4, 5, 6} {
		if err := l.PushBack(v); err != nil {
			t.Fatalf("push back failed: %v", err)
		}
	}

	if l.Len() != 6 {
		t.Fatalf("unexpected length: %d", l.Len())
	}
	if !l.Includes(intEq, 2) {
		t.Fatal("2 was expected in the list")
	}
	if l.Includes(intEq, 7) {
		t.Fatal("7 was not expected in the list")
	}

	want := []int{3, 2, 1, 4, 5, 6}
	for i, w := range want {
		item, ok := l.PopFront()
		if !ok {
			t.Fatal("item was expected")
		}
		if item != w {
			t.Fatalf("unexpected item: %d, want %d", item, w)
		}
		if l.Len() != len(want)-i-1 {
			t.Fatalf("unexpected length: %d", l.Len())
		}
	}
}

func TestListOfPopEmpty(t *testing.T) {
	l := NewListOf[int]()
	for i := 0; i < 10; i++ {
		if _, ok := l.PopFront(); ok {
			t.Fatal("no item was expected")
		}
		if _, ok := l.PopBack(); ok {
			t.Fatal("no item was expected")
		}
		if l.Len() != 0 {
			t.Fatalf("unexpected length: %d", l.Len())
		}
	}
}

func TestListOfPopBack(t *testing.T) {
	l := NewListOf[int]()
	for i := 0; i < 100; i++ {
		if err := l.PushBack(i); err != nil {
			t.Fatalf("push back failed: %v", err)
		}
	}
	if l.Len() != 100 {
		t.Fatalf("unexpected length: %d", l.Len())
	}

	// The O(n) pop.
	for i := 99; i >= 0; i-- {
		item, ok := l.PopBack()
		if !ok {
			t.Fatal("item was expected")
		}
		if item != i {
			t.Fatalf("unexpected item: %d, want %d", item, i)
		}
	}
	l.Free()
}

func TestListOfStructQueue(t *testing.T) {
	type pair struct {
		x, y int
	}
	l := NewListOf[pair]()

	for i := 0; i < 100; i++ {
		if err := l.PushBack(pair{x: i, y: 2 * i}); err != nil {
			t.Fatalf("push back failed: %v", err)
		}
		if l.Len() != i+1 {
			t.Fatalf("unexpected length: %d", l.Len())
		}
	}

	for i := 0; i < 100; i++ {
		item, ok := l.PopFront()
		if !ok {
			t.Fatal("item was expected")
		}
		if item.x != i || item.y != 2*i {
			t.Fatalf("unexpected item: %+v", item)
		}
	}
	l.Free()
}

func TestListOfRemove(t *testing.T) {
	l := NewListOf[int]()
	for i := 1; i <= 5; i++ {
		if err := l.PushBack(i); err != nil {
			t.Fatalf("push back failed: %v", err)
		}
	}

	// Head removal needs no predecessor.
	l.Remove(l.Head(), nil)
	if l.Len() != 4 || l.Head().Value != 2 {
		t.Fatalf("unexpected list after head removal: len=%d head=%d", l.Len(), l.Head().Value)
	}

	// Tail removal with its genuine predecessor takes the O(1) path.
	var prev, tail *NodeOf[int]
	for n := l.Head(); n != nil; n = n.Next() {
		prev, tail = tail, n
	}
	l.Remove(tail, prev)
	if l.Len() != 3 {
		t.Fatalf("unexpected length: %d", l.Len())
	}
	if _, ok := l.PopBack(); !ok {
		t.Fatal("item was expected")
	}
	if err := l.PushBack(4); err != nil {
		t.Fatalf("push back failed: %v", err)
	}

	// Interior removal: 2, 3, 4 with node 3 unlinked through node 2.
	head := l.Head()
	l.Remove(head.Next(), head)
	if l.Len() != 2 {
		t.Fatalf("unexpected length: %d", l.Len())
	}
	if l.Includes(intEq, 3) {
		t.Fatal("3 was not expected in the list")
	}
	if head.Next().Value != 4 {
		t.Fatalf("unexpected successor: %d", head.Next().Value)
	}
	l.Free()
}

func TestListOfRemoveBogusPredecessor(t *testing.T) {
	l := NewListOf[int]()
	for i := 1; i <= 5; i++ {
		if err := l.PushBack(i); err != nil {
			t.Fatalf("push back failed: %v", err)
		}
	}

	// A non-nil predecessor that does not precede the node is a silent
	// no-op, not an error.
	head := l.Head()
	interior := head.Next().Next() // 3
	l.Remove(interior, head)
	if l.Len() != 5 {
		t.Fatalf("list changed on bogus predecessor: len=%d", l.Len())
	}
	if !l.Includes(intEq, 3) {
		t.Fatal("3 was expected in the list")
	}

	// A nil predecessor for an interior node is equally a no-op.
	l.Remove(interior, nil)
	if l.Len() != 5 {
		t.Fatalf("list changed on nil predecessor: len=%d", l.Len())
	}

	// The tail is removed even with a bogus predecessor, through the
	// pop-back fallback.
	var tail *NodeOf[int]
	for n := l.Head(); n != nil; n = n.Next() {
		tail = n
	}
	l.Remove(tail, head)
	if l.Len() != 4 {
		t.Fatalf("unexpected length: %d", l.Len())
	}
	if l.Includes(intEq, 5) {
		t.Fatal("5 was not expected in the list")
	}
	l.Free()
}

func TestListOfLimiter(t *testing.T) {
	nsz := nodeSize[int]()
	mem := NewBudgetLimiter(3 * nsz)
	l := NewListOf[int](WithMemLimiter(mem))

	for i := 0; i < 3; i++ {
		if err := l.PushBack(i); err != nil {
			t.Fatalf("push back failed: %v", err)
		}
	}
	err := l.PushFront(3)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("list changed on denied push: len=%d", l.Len())
	}

	// Popping returns budget, so pushing works again.
	if _, ok := l.PopFront(); !ok {
		t.Fatal("item was expected")
	}
	if err := l.PushBack(3); err != nil {
		t.Fatalf("push back failed: %v", err)
	}

	l.Free()
	if mem.Used() != 0 {
		t.Fatalf("budget not returned: %d bytes still reserved", mem.Used())
	}
	l.Free() // second free is a no-op
	if mem.Used() != 0 {
		t.Fatalf("double free released budget: %d", mem.Used())
	}
}
