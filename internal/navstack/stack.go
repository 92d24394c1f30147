package navstack

import (
	"log"

	"github.com/ytget/yt-browser/internal/model"
)

// Stack maintains the ordered sequence of view descriptors representing the
// user's navigation history. It is the sole writer of the sequence; readers
// get copies. Every mutation fires the change listener synchronously, which
// is how the view cache learns to reconcile.
type Stack struct {
	descriptors []model.ViewDescriptor
	onChange    func()
}

// New creates a navigation stack seeded with the home descriptor
func New() *Stack {
	return &Stack{
		descriptors: []model.ViewDescriptor{model.HomeDescriptor()},
	}
}

// OnChange sets the listener fired after every mutation
func (s *Stack) OnChange(listener func()) {
	s.onChange = listener
}

// Push appends a descriptor to the top of the stack
func (s *Stack) Push(desc model.ViewDescriptor) {
	s.descriptors = append(s.descriptors, desc)
	log.Printf("Navigation push: kind=%s locator=%s depth=%d", desc.Kind, desc.Locator, len(s.descriptors))
	s.notify()
}

// Pop removes the top descriptor and reports whether anything was removed.
// The root home descriptor is never popped.
func (s *Stack) Pop() bool {
	if len(s.descriptors) <= 1 {
		return false
	}

	top := s.descriptors[len(s.descriptors)-1]
	s.descriptors = s.descriptors[:len(s.descriptors)-1]
	log.Printf("Navigation pop: kind=%s locator=%s depth=%d", top.Kind, top.Locator, len(s.descriptors))
	s.notify()
	return true
}

// Replace swaps the top descriptor in place, keeping the stack depth.
// Replacing the root falls back to Push so home is never displaced.
func (s *Stack) Replace(desc model.ViewDescriptor) {
	if len(s.descriptors) <= 1 {
		s.Push(desc)
		return
	}

	s.descriptors[len(s.descriptors)-1] = desc
	log.Printf("Navigation replace: kind=%s locator=%s depth=%d", desc.Kind, desc.Locator, len(s.descriptors))
	s.notify()
}

// Reset drops everything above the root, returning to home
func (s *Stack) Reset() {
	if len(s.descriptors) == 1 {
		return
	}

	s.descriptors = s.descriptors[:1]
	log.Printf("Navigation reset to home")
	s.notify()
}

// Descriptors returns a copy of the current sequence in stack order
func (s *Stack) Descriptors() []model.ViewDescriptor {
	out := make([]model.ViewDescriptor, len(s.descriptors))
	copy(out, s.descriptors)
	return out
}

// Current returns the top descriptor
func (s *Stack) Current() model.ViewDescriptor {
	return s.descriptors[len(s.descriptors)-1]
}

// Depth returns the number of descriptors on the stack
func (s *Stack) Depth() int {
	return len(s.descriptors)
}

// notify fires the change listener if set
func (s *Stack) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
