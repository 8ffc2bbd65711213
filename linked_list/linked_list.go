package linked_list

import "github.com/goose-lang/std"

// List is a singly linked list that caches its last node and its length,
// so appending and Len are constant time.
//
// Invariant: tail is the last node reachable from head (nil iff the list
// is empty) and length is the number of reachable nodes. Rewiring links
// through Head or NodeAt voids this invariant; on a cyclic list only
// HasCycle, NodeAt and Clear terminate.
type List[T any] struct {
	head   *Node[T]
	tail   *Node[T]
	length int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

func FromValues[T any](vs ...T) *List[T] {
	l := New[T]()
	for _, v := range vs {
		l.InsertAtEnd(v)
	}
	return l
}

func (l *List[T]) InsertAtEnd(data T) {
	n := NewNode(data)
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		// a tail with a successor means the caller wired a cycle
		std.Assert(l.tail.next == nil)
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// DeleteFromBeginning unlinks the first node and returns its data, or
// false if the list is empty.
func (l *List[T]) DeleteFromBeginning() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	n.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return n.data, true
}

func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.data, true
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the cached length.
func (l *List[T]) Len() int {
	return l.length
}

// Count walks the list and counts its nodes. It agrees with Len for any
// acyclic list.
func (l *List[T]) Count() int {
	return l.head.Len()
}

func (l *List[T]) FindMiddle() (T, bool) {
	return l.head.Middle()
}

func (l *List[T]) HasCycle() bool {
	return l.head.HasCycle()
}

// Reverse reverses the list in place; the same nodes are kept and only
// their links change.
func (l *List[T]) Reverse() {
	l.tail = l.head
	l.head = l.head.Reverse()
}

func (l *List[T]) Values() []T {
	return l.head.Values()
}

func (l *List[T]) String() string {
	return l.head.String()
}

// Head exposes the first node so callers can inspect or rewire the chain.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// NodeAt returns the i'th node (0-indexed), or nil if i is out of range.
func (l *List[T]) NodeAt(i int) *Node[T] {
	if i < 0 || i >= l.length {
		return nil
	}
	n := l.head
	for range i {
		n = n.Next()
	}
	return n
}

// Clear drops every node. Links are cut one at a time so a cyclic chain
// is released too.
func (l *List[T]) Clear() {
	for range l.length {
		n := l.head
		if n == nil {
			break
		}
		l.head = n.next
		n.next = nil
	}
	l.head = nil
	l.tail = nil
	l.length = 0
}
