// Package session keeps the navigation state of one interactive inspection:
// a stack of slots from a root down to the slot currently being viewed.
//
// All methods serialize on one mutex. That is the only coordination the
// session offers; it does not lock the inspected graph.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/zbh255/bilog"

	"github.com/mesh-intelligence/inspector/internal/journal"
	"github.com/mesh-intelligence/inspector/internal/logging"
	"github.com/mesh-intelligence/inspector/pkg/types"
)

// Session errors.
var (
	ErrNoSuchChild  = errors.New("no such child")
	ErrNotWriteable = errors.New("slot is not writeable")
	ErrAtRoot       = errors.New("already at root")
)

// Recorder receives every successful edit.
type Recorder interface {
	Record(e journal.Edit) (string, error)
}

// Option configures a Session.
type Option func(s *Session)

// WithRecorder records edits to r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithLogger replaces the default logger.
func WithLogger(l bilog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

type frame struct {
	slot     types.Inspectable
	name     string
	children []types.Inspectable // as of the last List
}

// Session navigates from a root slot.
type Session struct {
	mu       sync.Mutex
	frames   []*frame
	recorder Recorder
	logger   bilog.Logger
}

// New starts a session at root.
func New(root types.Inspectable, opts ...Option) *Session {
	s := &Session{
		frames: []*frame{{slot: root, name: nameOf(root)}},
		logger: logging.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the slot being viewed.
func (s *Session) Current() types.Inspectable {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.top().slot
}

// Depth returns 0 at the root.
func (s *Session) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.frames) - 1
}

// Path returns the slot names from the root joined by "/".
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path()
}

// List inspects the current slot and returns its children. The result is
// what Enter and Set index into.
func (s *Session) List() ([]types.Inspectable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list()
}

// Enter descends into child i of the current slot. The child must itself be
// inspectable; otherwise its error is returned and the session stays put.
func (s *Session) Enter(i int) (types.Inspectable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.child(i)
	if err != nil {
		return nil, err
	}
	children, err := c.Inspect()
	if err != nil {
		return nil, err
	}
	s.frames = append(s.frames, &frame{slot: c, name: nameOf(c), children: children})
	return c, nil
}

// Up returns to the parent slot.
func (s *Session) Up() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.frames) == 1 {
		return ErrAtRoot
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}

// Top returns to the root.
func (s *Session) Top() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = s.frames[:1]
}

// Set parses text into child i of the current slot and records the edit.
// A recorder failure is logged, not returned: the edit itself succeeded.
func (s *Session) Set(i int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.child(i)
	if err != nil {
		return err
	}
	w, ok := c.(types.Writeable)
	if !ok {
		return fmt.Errorf("%s: %w", nameOf(c), ErrNotWriteable)
	}

	before, _ := c.ValueToOutput()
	if err := w.SetValueFromInput(text); err != nil {
		s.logger.Debug(fmt.Sprintf("set %s/%s rejected: %v", s.path(), nameOf(c), err))
		return err
	}
	after, _ := c.ValueToOutput()

	path := s.path() + "/" + nameOf(c)
	s.logger.Info(fmt.Sprintf("set %s = %s (was %s)", path, after, before))
	if s.recorder != nil {
		edit := journal.Edit{Path: path, Member: nameOf(c), Before: before, After: after}
		if _, err := s.recorder.Record(edit); err != nil {
			s.logger.ErrorFromErr(fmt.Errorf("journal %s: %w", path, err))
		}
	}
	return nil
}

func (s *Session) top() *frame {
	return s.frames[len(s.frames)-1]
}

func (s *Session) path() string {
	names := make([]string, len(s.frames))
	for i, f := range s.frames {
		names[i] = f.name
	}
	return strings.Join(names, "/")
}

func (s *Session) list() ([]types.Inspectable, error) {
	f := s.top()
	children, err := f.slot.Inspect()
	if err != nil {
		return nil, err
	}
	f.children = children
	return children, nil
}

// child returns child i from the last listing, listing first if needed.
func (s *Session) child(i int) (types.Inspectable, error) {
	f := s.top()
	if f.children == nil {
		if _, err := s.list(); err != nil {
			return nil, err
		}
	}
	if i < 0 || i >= len(f.children) {
		return nil, fmt.Errorf("child %d of %d: %w", i, len(f.children), ErrNoSuchChild)
	}
	return f.children[i], nil
}

func nameOf(i types.Inspectable) string {
	if n, ok := i.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "?"
}
