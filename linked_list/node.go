package linked_list

import (
	"fmt"
	"strings"
)

// Node is one element of a singly linked chain. A nil *Node is the empty
// chain, so every method below is safe to call on nil.
//
// The successor link does not imply ownership: a chain may loop back on
// itself, and the traversals that assume otherwise say so.
type Node[T any] struct {
	data T
	next *Node[T]
}

func NewNode[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

func (n *Node[T]) Data() T {
	return n.data
}

func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

func (n *Node[T]) SetNext(next *Node[T]) {
	n.next = next
}

// Len counts the nodes reachable from n.
//
// n must not contain a cycle.
func (n *Node[T]) Len() int {
	count := 0
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// Last returns the final node of an acyclic chain, or nil if n is nil.
func (n *Node[T]) Last() *Node[T] {
	if n == nil {
		return nil
	}
	cur := n
	for cur.next != nil {
		cur = cur.next
	}
	return cur
}

// Middle returns the data of the middle node. For an even number of
// nodes it is the later of the two candidates.
func (n *Node[T]) Middle() (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	slow, fast := n, n
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.data, true
}

// HasCycle reports whether following next from n ever revisits a node,
// using Floyd's tortoise and hare in constant space.
func (n *Node[T]) HasCycle() bool {
	slow, fast := n, n
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}

// Reverse flips every link in place and returns the new first node (the
// old last node).
//
// n must not contain a cycle.
func (n *Node[T]) Reverse() *Node[T] {
	var prev *Node[T]
	cur := n
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	return prev
}

func (n *Node[T]) Values() []T {
	vs := []T{}
	for cur := n; cur != nil; cur = cur.next {
		vs = append(vs, cur.data)
	}
	return vs
}

// String renders the chain as "[10] -> [20] -> None".
//
// n must not contain a cycle.
func (n *Node[T]) String() string {
	var b strings.Builder
	for cur := n; cur != nil; cur = cur.next {
		fmt.Fprintf(&b, "[%v] -> ", cur.data)
	}
	b.WriteString("None")
	return b.String()
}
