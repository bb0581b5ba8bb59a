package engine

// Warrior is one competitor: a name (for display only) and the FIFO
// queue of its live process counters. An empty queue means the
// warrior has no live processes and is permanently skipped by the
// scheduler.
type Warrior struct {
	Name  string
	Queue *ProcessQueue
}

// NewWarrior returns a warrior with an empty process queue.
func NewWarrior(name string) *Warrior {
	return &Warrior{Name: name, Queue: NewProcessQueue()}
}

// Alive reports whether the warrior still has at least one live
// process.
func (w *Warrior) Alive() bool {
	return w.Queue.Len() > 0
}
