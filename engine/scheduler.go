package engine

// Scheduler is the round-robin process scheduler over a fixed list of
// warriors sharing one Core. It never reorders or drops warriors: a
// warrior with an empty queue is skipped forever, but CurrentWarrior
// still advances past it every cycle.
type Scheduler struct {
	Core           *Core
	Warriors       []*Warrior
	CurrentWarrior int
	Settings       MatchSettings
}

// Cycle advances exactly one instruction for the current warrior, or
// skips one dead warrior, then rotates CurrentWarrior. It returns a
// non-nil *Error only for an engine contract violation (e.g. an
// unresolved or invalid modifier reaching dispatch), never for
// warrior misbehavior, which is always a silent process kill.
func (s *Scheduler) Cycle() *Error {
	if len(s.Warriors) == 0 {
		return newError(ErrEmptyWarriorList, "scheduler has no warriors")
	}

	w := s.Warriors[s.CurrentWarrior]
	if w.Queue.Len() == 0 {
		s.advance()
		return nil
	}

	pc, _ := w.Queue.PopFront()
	inst := s.Core.At(pc)

	fallThrough := s.Core.Rel(pc, 1)
	w.Queue.PushBack(fallThrough)

	applyPreDecrement(s.Core, pc, inst.AValue, inst.AMode)
	applyPreDecrement(s.Core, pc, inst.BValue, inst.BMode)

	src := effectiveAddress(s.Core, pc, inst.AValue, inst.AMode)
	dst := effectiveAddress(s.Core, pc, inst.BValue, inst.BMode)

	if err := dispatch(s.Core, pc, src, dst, inst, w, s.Settings); err != nil {
		return err
	}

	applyPostIncrement(s.Core, pc, inst.AValue, inst.AMode)
	applyPostIncrement(s.Core, pc, inst.BValue, inst.BMode)

	s.advance()
	return nil
}

func (s *Scheduler) advance() {
	s.CurrentWarrior = (s.CurrentWarrior + 1) % len(s.Warriors)
}

// AliveCount reports how many warriors still have at least one live
// process. A host typically ends a match once this drops to one or
// zero.
func (s *Scheduler) AliveCount() int {
	n := 0
	for _, w := range s.Warriors {
		if w.Alive() {
			n++
		}
	}
	return n
}
