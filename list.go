package chained

import "unsafe"

// NodeOf is a single heap-allocated link in a ListOf chain. The Value field
// may be read or replaced freely; the link structure itself must only be
// changed through the list's methods.
type NodeOf[T any] struct {
	next  *NodeOf[T]
	Value T
}

// Next returns the node after n, or nil at the end of the chain.
func (n *NodeOf[T]) Next() *NodeOf[T] {
	return n.next
}

// ListOf is a singly linked list that can serve as a stack, queue or deque.
// Pushing at either end is O(1). Popping from the front is O(1); popping
// from the back is O(n) because nodes carry no predecessor pointer, so if
// only one end is popped it should be the front.
//
// The zero ListOf is empty and ready to use.
type ListOf[T any] struct {
	head   *NodeOf[T]
	tail   *NodeOf[T]
	length int
	mem    MemLimiter
}

// NewListOf creates an empty list.
//
// Parameters:
//   - WithMemLimiter option to meter node allocations
func NewListOf[T any](options ...func(*Config)) *ListOf[T] {
	c := applyOptions(options)
	return &ListOf[T]{mem: c.mem}
}

func nodeSize[T any]() uintptr {
	var n NodeOf[T]
	return unsafe.Sizeof(n)
}

// PushBack appends item at the end of the list in O(1) time. It fails only
// when a configured limiter denies the node reservation.
func (l *ListOf[T]) PushBack(item T) error {
	if err := reserve(l.mem, nodeSize[T]()); err != nil {
		return err
	}
	node := &NodeOf[T]{Value: item}

	if l.head == nil {
		l.head = node
		l.tail = node
		l.length = 1
		return nil
	}

	l.tail.next = node
	l.tail = node
	l.length++
	return nil
}

// PushFront prepends item at the front of the list in O(1) time. It fails
// only when a configured limiter denies the node reservation.
func (l *ListOf[T]) PushFront(item T) error {
	if err := reserve(l.mem, nodeSize[T]()); err != nil {
		return err
	}
	node := &NodeOf[T]{next: l.head, Value: item}

	if l.head == nil {
		l.head = node
		l.tail = node
		l.length = 1
		return nil
	}

	l.head = node
	l.length++
	return nil
}

// PopFront removes and returns the first item in O(1) time. The ok result
// is false when the list is empty.
func (l *ListOf[T]) PopFront() (item T, ok bool) {
	if l.head == nil {
		return item, false
	}

	node := l.head
	if l.head == l.tail {
		l.head = nil
		l.tail = nil
		l.length = 0
	} else {
		l.head = node.next
		l.length--
	}
	node.next = nil
	release(l.mem, nodeSize[T]())
	return node.Value, true
}

// PopBack removes and returns the last item. The ok result is false when
// the list is empty. Unlinking the tail requires a walk to the node before
// it, so PopBack is O(n).
func (l *ListOf[T]) PopBack() (item T, ok bool) {
	if l.head == nil {
		return item, false
	}

	if l.head == l.tail {
		item = l.head.Value
		l.head = nil
		l.tail = nil
		l.length = 0
		release(l.mem, nodeSize[T]())
		return item, true
	}

	curr := l.head
	for curr.next != l.tail {
		curr = curr.next
	}

	item = l.tail.Value
	curr.next = nil
	l.tail = curr
	l.length--
	release(l.mem, nodeSize[T]())
	return item, true
}

// popFrontNode unlinks and returns the first node, or nil when the list is
// empty. Unlike PopFront it keeps the node's reservation: the node stays
// allocated and can be relinked into another list sharing the limiter.
func (l *ListOf[T]) popFrontNode() *NodeOf[T] {
	node := l.head
	if node == nil {
		return nil
	}
	if l.head == l.tail {
		l.head = nil
		l.tail = nil
		l.length = 0
	} else {
		l.head = node.next
		l.length--
	}
	node.next = nil
	return node
}

// pushFrontNode relinks a node carried over from another list. The node's
// reservation moves with it; nothing is reserved or released.
func (l *ListOf[T]) pushFrontNode(node *NodeOf[T]) {
	node.next = l.head
	if l.head == nil {
		l.head = node
		l.tail = node
		l.length = 1
		return
	}
	l.head = node
	l.length++
}

// Includes reports whether any item in the list compares equal to item
// under eq. Best case O(1), worst case O(n).
func (l *ListOf[T]) Includes(eq EqualFn[T], item T) bool {
	for curr := l.head; curr != nil; curr = curr.next {
		if eq(curr.Value, item) {
			return true
		}
	}
	return false
}

// Remove unlinks node from the list given its direct predecessor. prev must
// be nil when node is the head. Head and tail removals take their O(1)
// paths (the tail path needs a genuine predecessor, otherwise it degrades
// to the O(n) pop-back walk). A non-nil prev that does not actually precede
// node leaves the list untouched: the contract violation is not reported.
func (l *ListOf[T]) Remove(node, prev *NodeOf[T]) {
	if l.head == nil {
		return
	}

	if node == l.head {
		l.PopFront()
		return
	}

	if node == l.tail {
		if prev != nil && prev.next == node {
			prev.next = nil
			l.tail = prev
			l.length--
			release(l.mem, nodeSize[T]())
			return
		}
		l.PopBack()
		return
	}

	if prev != nil && prev.next == node {
		prev.next = node.next
		node.next = nil
		l.length--
		release(l.mem, nodeSize[T]())
	}
}

// Head returns the first node of the list, or nil when it is empty. Walk
// the chain with NodeOf.Next.
func (l *ListOf[T]) Head() *NodeOf[T] {
	return l.head
}

// Len returns the number of items in the list.
func (l *ListOf[T]) Len() int {
	return l.length
}

// Free unlinks every remaining node in O(n) time and returns their
// reservations to the limiter. The list is empty afterward; calling Free
// again is a no-op.
func (l *ListOf[T]) Free() {
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = nil
		release(l.mem, nodeSize[T]())
		curr = next
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}
