// Released under an MIT license. See LICENSE.

package task

import (
	"sync"
)

// E R S
// 0 1 0 Task is running.
// 0 1 1 Task is stopping but Runnable has not yet been called.
// 0 0 1 Task is stopping but has not returned from Run.
// 0 0 0 Task is stopped.

// E R S
// 1 X X Task called exit.

// The type state is a task's state.
type state struct {
	sync.Mutex

	exited   bool
	running  bool
	stopping bool
}

func fresh() *state {
	return &state{}
}

// Exit marks the task as having requested an exit.
func (s *state) Exit() {
	s.Lock()
	defer s.Unlock()

	s.exited = true
}

// Exited returns true if the task requested an exit.
func (s *state) Exited() bool {
	s.Lock()
	defer s.Unlock()

	return s.exited
}

// Runnable returns true if a task is running and not stopping.
//
// R S -> R S
// 0 X    0 X returns false
// 1 0    1 0 returns true
// 1 1    0 1 returns false.
func (s *state) Runnable() bool {
	s.Lock()
	defer s.Unlock()

	if !s.running {
		return false
	}

	s.running = !s.stopping

	return s.running
}

// Started marks the task as running.
// Calling this on a task that is already running results in a panic.
//
// R S -> R S
// 0 X -> 1 0
// 1 X    1 X panic.
func (s *state) Started() {
	s.Lock()
	defer s.Unlock()

	if s.running {
		panic("already running")
	}

	s.running = true
	s.stopping = false
}

// Stop marks a running task as stopping. The task notices the next time
// it checks if it is runnable.
//
// R S -> R S
// X 1 -> X 1
// 0 X -> 0 X
// 1 0 -> 1 1.
func (s *state) Stop() bool {
	s.Lock()
	defer s.Unlock()

	if s.stopping || !s.running {
		return false
	}

	s.stopping = true

	return true
}

// Stopped clears running and stopping. It returns true if the task was
// asked to stop.
//
// R S -> R S
// X X -> 0 0.
func (s *state) Stopped() bool {
	s.Lock()
	defer s.Unlock()

	stopped := s.stopping

	s.running = false
	s.stopping = false

	return stopped
}
