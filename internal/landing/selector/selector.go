// Package selector holds the active-language state of one landing view.
package selector

import "github.com/zarazaex69/zik-landing/internal/content"

// Selector owns the active language of a single view. It is not safe for
// concurrent use; each view mounts its own.
type Selector struct {
	current     content.Code
	subscribers []subscriber
	nextID      int
	closed      bool
}

type subscriber struct {
	id int
	fn func(content.Code)
}

// New returns a selector starting at initial, or content.Default when
// initial is unsupported.
func New(initial content.Code) *Selector {
	return &Selector{current: content.Resolve(string(initial))}
}

// Current returns the active code.
func (s *Selector) Current() content.Code {
	return s.current
}

// SetLanguage replaces the active code and notifies subscribers. Values
// outside the supported set are rejected and leave the state untouched.
func (s *Selector) SetLanguage(value string) (content.Code, bool) {
	code, ok := content.Parse(value)
	if !ok {
		return s.current, false
	}
	s.current = code
	if s.closed {
		return code, true
	}
	for _, sub := range append([]subscriber(nil), s.subscribers...) {
		sub.fn(code)
	}
	return code, true
}

// Subscribe registers fn to run after every accepted SetLanguage. The
// returned func removes the subscription.
func (s *Selector) Subscribe(fn func(content.Code)) func() {
	if fn == nil || s.closed {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Close tears the selector down. Later changes update state silently.
func (s *Selector) Close() {
	s.closed = true
	s.subscribers = nil
}
