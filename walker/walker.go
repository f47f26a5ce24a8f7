package walker

import (
	"fmt"
	"strconv"

	"github.com/timepp/uu/internal/ancestry"
	"github.com/timepp/uu/logging"
	"github.com/timepp/uu/uuerrors"
	"github.com/timepp/uu/value"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// NodeKind classifies a visited node.
type NodeKind int

const (
	// Leaf is a non-reference value.
	Leaf NodeKind = iota

	// Object is an array or object that is not on the active path.
	Object

	// Loop is an array or object that is already one of its own ancestors.
	Loop
)

// String returns a string representation of the kind.
func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Object:
		return "object"
	case Loop:
		return "loop"
	default:
		return fmt.Sprintf("NodeKind(%d)", k)
	}
}

// VisitFunc is called for every node reached by a traversal.
// The path slice is owned by the callee and may be retained.
type VisitFunc func(path []string, v any, kind NodeKind) Action

// Traverse walks v depth-first, calling visit for every reached node.
// A negative maxDepth means unlimited depth.
// A panic raised by visit propagates to the caller unchanged.
func Traverse(v any, maxDepth int, visit VisitFunc) {
	w := New(WithMaxDepth(maxDepth), WithVisitor(visit))
	w.run(v)
}

// Walker traverses value graphs and reports each node to a visitor.
type Walker struct {
	visit    VisitFunc
	maxDepth int
	logger   logging.Logger

	// Per-walk state
	stack   *ancestry.Stack
	stopped bool
	visited int
	loops   int
}

// New creates a new Walker. The default depth is unlimited.
func New(opts ...Option) *Walker {
	w := &Walker{
		maxDepth: -1,
		logger:   logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Option configures the Walker.
type Option func(*Walker)

// WithVisitor sets the function called for every node.
func WithVisitor(fn VisitFunc) Option {
	return func(w *Walker) { w.visit = fn }
}

// WithMaxDepth sets the maximum path length whose children are still
// enumerated. A negative depth means unlimited.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) { w.maxDepth = depth }
}

// WithLogger sets the logger used for traversal diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(w *Walker) { w.logger = logging.ForComponent(l, "walker") }
}

// Walk traverses v using the given options.
// It returns a *uuerrors.ConfigError when no visitor is configured.
func Walk(v any, opts ...Option) error {
	return New(opts...).Walk(v)
}

// Walk traverses v with the walker's configuration.
// A Walker may be reused sequentially but not concurrently.
func (w *Walker) Walk(v any) error {
	if w.visit == nil {
		return &uuerrors.ConfigError{Option: "visitor", Message: "walker: no visitor configured"}
	}
	w.run(v)
	w.logger.Debug("walk finished",
		"visited", w.visited,
		"loops", w.loops,
		"stopped", w.stopped,
	)
	return nil
}

func (w *Walker) run(v any) {
	w.stack = ancestry.New(16)
	w.stopped = false
	w.visited = 0
	w.loops = 0
	w.walkNode([]string{}, v)
	w.stack = nil
}

// walkNode visits one node and, depending on the action, its children.
func (w *Walker) walkNode(path []string, v any) {
	if !value.IsReference(v) {
		w.report(path, v, Leaf)
		return
	}
	if w.stack.Contains(v) {
		w.loops++
		w.report(path, v, Loop)
		return
	}

	if !w.handleAction(w.report(path, v, Object)) {
		return
	}
	if w.maxDepth >= 0 && len(path) >= w.maxDepth {
		return
	}

	w.stack.Push(v)
	defer w.stack.Pop()

	switch t := v.(type) {
	case *value.Array:
		for i, item := range t.Items {
			w.walkNode(childPath(path, strconv.Itoa(i)), item)
			if w.stopped {
				return
			}
		}
	case *value.Object:
		t.Range(func(k string, child any) bool {
			w.walkNode(childPath(path, k), child)
			return !w.stopped
		})
	}
}

func (w *Walker) report(path []string, v any, kind NodeKind) Action {
	w.visited++
	action := w.visit(path, v, kind)
	if action == Stop {
		w.stopped = true
	}
	return action
}

// handleAction processes the action returned by a visitor.
// Returns true if walking should continue to children. An undefined action
// is logged and treated as Continue.
func (w *Walker) handleAction(action Action) bool {
	if !action.IsValid() {
		w.logger.Warn("visitor returned an undefined action; continuing", "action", action.String())
		return true
	}
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}

// childPath returns a fresh slice so visitors may retain it.
func childPath(path []string, key string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = key
	return out
}
