package queue

import (
	"fmt"
	"list_exercises/linked_list"
	"strings"
)

// Queue is a FIFO queue over a linked list: Enqueue appends at the tail
// and Dequeue removes from the head, so both are constant time.
type Queue[T any] struct {
	list *linked_list.List[T]
}

func New[T any]() *Queue[T] {
	return &Queue[T]{list: linked_list.New[T]()}
}

func (q *Queue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

func (q *Queue[T]) Enqueue(data T) {
	q.list.InsertAtEnd(data)
}

// Dequeue removes the oldest element. It returns false and leaves the
// queue untouched if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.list.DeleteFromBeginning()
}

func (q *Queue[T]) Peek() (T, bool) {
	return q.list.Front()
}

func (q *Queue[T]) Size() int {
	return q.list.Len()
}

// Drain dequeues every element, oldest first.
func (q *Queue[T]) Drain() []T {
	els := make([]T, 0, q.Size())
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		els = append(els, v)
	}
	return els
}

func (q *Queue[T]) String() string {
	if q.IsEmpty() {
		return "Queue is empty"
	}
	elems := []string{}
	for _, v := range q.list.Values() {
		elems = append(elems, fmt.Sprint(v))
	}
	return strings.Join(elems, " -> ")
}
