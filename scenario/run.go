package scenario

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"list_exercises/linked_list"
	"list_exercises/queue"
)

// printer remembers the first write error so the run loop can stay flat.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Run executes every case in s and writes one labeled line per result.
func Run(w io.Writer, s *Scenario) error {
	p := &printer{w: w}
	for _, c := range s.Lists {
		runList(p, c)
	}
	if s.Queue != nil {
		runQueue(p, s.Queue)
	}
	return errors.Wrap(p.err, "writing results")
}

func runList(p *printer, c ListCase) {
	log := logrus.WithField("list", c.Name)
	log.WithField("values", c.Values).Debug("building list")

	l := linked_list.FromValues(c.Values...)
	p.printf("%s length: %d", c.Name, l.Len())
	p.printf("%s list: %s", c.Name, l)

	if c.Middle {
		if v, ok := l.FindMiddle(); ok {
			p.printf("%s middle: %d", c.Name, v)
		} else {
			p.printf("%s middle: none", c.Name)
		}
	}
	if c.Reverse {
		l.Reverse()
		p.printf("%s reversed: %s", c.Name, l)
	}

	if c.CycleTo != nil {
		log.WithField("to", *c.CycleTo).Debug("linking tail back")
		l.NodeAt(l.Len() - 1).SetNext(l.NodeAt(*c.CycleTo))
	}
	p.printf("%s has cycle: %t", c.Name, l.HasCycle())
	l.Clear()
}

func runQueue(p *printer, c *QueueCase) {
	log := logrus.WithField("queue", len(c.Enqueue))

	q := queue.New[int]()
	for _, v := range c.Enqueue {
		q.Enqueue(v)
	}
	log.WithField("size", q.Size()).Debug("enqueued")
	p.printf("queue: %s", q)
	p.printf("queue size: %d", q.Size())
	if v, ok := q.Peek(); ok {
		p.printf("queue peek: %d", v)
	} else {
		p.printf("queue peek: none")
	}

	for range c.Dequeue {
		if v, ok := q.Dequeue(); ok {
			p.printf("queue dequeued: %d", v)
		} else {
			p.printf("queue dequeued: none")
		}
	}
	log.WithField("size", q.Size()).Debug("dequeued")
	p.printf("queue: %s", q)
	p.printf("queue size: %d", q.Size())
	p.printf("queue empty: %t", q.IsEmpty())
}
