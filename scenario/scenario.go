// Package scenario runs linked list and queue exercises described in a
// TOML file and prints their results.
package scenario

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ListCase builds a list from Values and runs the requested operations
// on it.
type ListCase struct {
	Name    string `toml:"name"`
	Values  []int  `toml:"values"`
	Reverse bool   `toml:"reverse"`
	Middle  bool   `toml:"middle"`

	// CycleTo links the last node back to the node at this index once
	// every acyclic operation has run.
	CycleTo *int `toml:"cycle_to"`
}

type QueueCase struct {
	Enqueue []int `toml:"enqueue"`
	Dequeue int   `toml:"dequeue"`
}

type Scenario struct {
	Lists []ListCase `toml:"list"`
	Queue *QueueCase `toml:"queue"`
}

// Default reproduces the classic exercises: reversal, middle-finding,
// cycle detection and the FIFO queue.
func Default() *Scenario {
	cycleTo := 1
	return &Scenario{
		Lists: []ListCase{
			{Name: "reverse", Values: []int{10, 20, 30, 40}, Reverse: true},
			{Name: "middle", Values: []int{10, 20, 30, 40, 50}, Middle: true},
			{Name: "cycle", Values: []int{1, 2, 3, 4}, CycleTo: &cycleTo},
		},
		Queue: &QueueCase{Enqueue: []int{10, 20, 30}, Dequeue: 3},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading scenario %s", path)
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "loading scenario %s", path)
	}
	return s, nil
}

func Parse(data string) (*Scenario, error) {
	s := &Scenario{}
	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown scenario key %q", undecoded[0].String())
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scenario) validate() error {
	for i := range s.Lists {
		c := &s.Lists[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("list%d", i)
		}
		if c.CycleTo != nil && (*c.CycleTo < 0 || *c.CycleTo >= len(c.Values)) {
			return errors.Errorf("list %s: cycle_to %d out of range for %d values", c.Name, *c.CycleTo, len(c.Values))
		}
	}
	if s.Queue != nil && s.Queue.Dequeue < 0 {
		return errors.Errorf("queue: negative dequeue count %d", s.Queue.Dequeue)
	}
	return nil
}
