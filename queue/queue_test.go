package queue_test

import (
	"list_exercises/queue"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestQueueFIFO(t *testing.T) {
	assert := assert.New(t)

	q := queue.New[int]()
	assert.Equal("Queue is empty", q.String())
	assert.Equal(0, q.Size())
	assert.True(q.IsEmpty())

	q.Enqueue(10)
	q.Enqueue(20)
	q.Enqueue(30)
	assert.Equal("10 -> 20 -> 30", q.String())
	assert.Equal(3, q.Size())
	v, ok := q.Peek()
	assert.True(ok)
	assert.Equal(10, v)

	v, ok = q.Dequeue()
	assert.True(ok)
	assert.Equal(10, v)
	assert.Equal("20 -> 30", q.String())
	assert.Equal(2, q.Size())
	v, _ = q.Peek()
	assert.Equal(20, v)

	q.Enqueue(40)
	q.Enqueue(50)
	assert.Equal(4, q.Size())

	assert.Equal([]int{20, 30, 40, 50}, q.Drain())
	assert.True(q.IsEmpty())
	assert.Equal(0, q.Size())
	assert.Equal("Queue is empty", q.String())
}

func TestQueueEmpty(t *testing.T) {
	assert := assert.New(t)

	q := queue.New[string]()
	v, ok := q.Dequeue()
	assert.False(ok)
	assert.Equal("", v)
	_, ok = q.Peek()
	assert.False(ok)
	assert.True(q.IsEmpty(), "dequeue on empty queue must not mutate")
	assert.Equal(0, q.Size())
	assert.Empty(q.Drain())
}

func TestQueuePeekDoesNotMutate(t *testing.T) {
	assert := assert.New(t)

	q := queue.New[int]()
	q.Enqueue(1)
	for range 3 {
		v, ok := q.Peek()
		assert.True(ok)
		assert.Equal(1, v)
	}
	assert.Equal(1, q.Size())
}

func TestQueueFIFOProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		assert := assert.New(t)
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")

		q := queue.New[int]()
		for _, x := range xs {
			q.Enqueue(x)
		}
		assert.Equal(len(xs), q.Size())

		for _, x := range xs {
			v, ok := q.Dequeue()
			assert.True(ok)
			assert.Equal(x, v)
		}
		assert.True(q.IsEmpty())
		assert.Equal(0, q.Size())
		_, ok := q.Dequeue()
		assert.False(ok)
	})
}

// Size tracks a model counter across arbitrary interleavings.
func TestQueueSizeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := queue.New[int]()
		model := []int{}
		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(t, "ops")
		for i, op := range ops {
			switch op {
			case 0:
				q.Enqueue(i)
				model = append(model, i)
			case 1:
				v, ok := q.Dequeue()
				assert.Equal(t, len(model) > 0, ok)
				if ok {
					assert.Equal(t, model[0], v)
					model = model[1:]
				}
			case 2:
				v, ok := q.Peek()
				assert.Equal(t, len(model) > 0, ok)
				if ok {
					assert.Equal(t, model[0], v)
				}
			}
			assert.Equal(t, len(model), q.Size())
			assert.Equal(t, len(model) == 0, q.IsEmpty())
		}
	})
}
