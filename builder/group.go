package builder

import "fmt"

// Combination selects how a group joins its children.
type Combination uint8

const (
	// Sequence concatenates the children.
	Sequence Combination = iota
	// Alternative matches any one of the children.
	Alternative
)

func (c Combination) String() string {
	if c == Alternative {
		return "alternative"
	}

	return "sequence"
}

// CaptureMode selects the enclosing syntax of a group.
type CaptureMode uint8

const (
	// Undefined renders no enclosing syntax unless the group needs it: a
	// named group captures, a quantified group or a nested alternation is
	// wrapped as non-capturing.
	Undefined CaptureMode = iota
	// Capturing always renders a capturing group.
	Capturing
	// NonCapturing always renders (?:...).
	NonCapturing
)

func (m CaptureMode) String() string {
	switch m {
	case Capturing:
		return "capturing"
	case NonCapturing:
		return "non-capturing"
	default:
		return "undefined"
	}
}

// Group is a container node holding an ordered list of children, each with
// the quantifier it was attached with.
//
// A Group is not safe for concurrent mutation. Use Clone to experiment with
// a variant of a tree.
type Group struct {
	combination Combination
	mode        CaptureMode
	name        string
	terms       []term
	err         error
}

// SequenceGroup returns an empty group concatenating its children.
func SequenceGroup() *Group {
	return &Group{combination: Sequence}
}

// AlternativeGroup returns a group matching any of its children, with one
// literal child per alternative given.
func AlternativeGroup(alternatives ...string) *Group {
	g := &Group{combination: Alternative}
	for _, alt := range alternatives {
		g.Unique(Text(alt))
	}

	return g
}

// NewGroup returns an empty group with the given combination and capture
// mode.
func NewGroup(c Combination, m CaptureMode) *Group {
	return &Group{combination: c, mode: m}
}

// Name returns the name of g, or "" when unnamed.
func (g *Group) Name() string { return g.name }

// Combination returns how g joins its children.
func (g *Group) Combination() Combination { return g.combination }

// Mode returns the declared capture mode of g.
func (g *Group) Mode() CaptureMode { return g.mode }

// Len returns the number of direct children of g.
func (g *Group) Len() int { return len(g.terms) }

// Err returns the first construction error recorded in the tree rooted at g,
// including names duplicated by renaming a group after it was attached.
func (g *Group) Err() error {
	if err := g.check(); err != nil {
		return err
	}

	seen := make(map[string]struct{})
	var err error
	g.eachGroup(func(sub *Group) {
		if err != nil || sub.name == "" {
			return
		}
		if _, dup := seen[sub.name]; dup {
			err = fmt.Errorf("%w: %q", ErrDuplicateName, sub.name)
			return
		}
		seen[sub.name] = struct{}{}
	})

	return err
}

// SetName names g. A named group always captures, and a name may appear at
// most once in a tree.
func (g *Group) SetName(name string) *Group {
	if g.err != nil {
		return g
	}

	switch {
	case name == "":
		g.err = fmt.Errorf("%w: empty name", ErrInvalidName)
		return g
	case g.mode == NonCapturing:
		g.err = fmt.Errorf("%w: %q on a non-capturing group", ErrInvalidName, name)
		return g
	}

	for _, t := range g.terms {
		found := false
		t.node.eachGroup(func(sub *Group) {
			found = found || sub.name == name
		})
		if found {
			g.err = fmt.Errorf("%w: %q", ErrDuplicateName, name)
			return g
		}
	}

	g.name = name

	return g
}

// Add attaches n with quantifier q. Failures are recorded on g and reported
// by Err.
func (g *Group) Add(n Node, q Quantifier) *Group {
	if g.err != nil {
		return g
	}

	n = unwrap(n)
	if isNilNode(n) {
		g.err = fmt.Errorf("child %d: %w", len(g.terms), ErrNilNode)
		return g
	}
	if err := q.Validate(); err != nil {
		g.err = fmt.Errorf("child %d: %w", len(g.terms), err)
		return g
	}
	if err := n.check(); err != nil {
		g.err = fmt.Errorf("child %d: %w", len(g.terms), err)
		return g
	}
	if err := g.checkAttach(n); err != nil {
		g.err = err
		return g
	}

	g.terms = append(g.terms, term{node: n, quant: q})

	return g
}

// Unique attaches n to match exactly once.
func (g *Group) Unique(n Node) *Group { return g.Add(n, None) }

// Optional attaches n to match zero or one time.
func (g *Group) Optional(n Node) *Group { return g.Add(n, Optional) }

// Some attaches n to match one or more times.
func (g *Group) Some(n Node) *Group { return g.Add(n, OneOrMore) }

// Any attaches n to match zero or more times.
func (g *Group) Any(n Node) *Group { return g.Add(n, ZeroOrMore) }

// Exactly attaches n to match exactly count times.
func (g *Group) Exactly(n Node, count int) *Group { return g.Add(n, Exactly(count)) }

// Between attaches n to match from min to max times.
func (g *Group) Between(n Node, min, max int) *Group { return g.Add(n, Between(min, max)) }

// AtLeast attaches n to match min times or more.
func (g *Group) AtLeast(n Node, min int) *Group { return g.Add(n, AtLeast(min)) }

// Clone returns a deep copy of g. Mutating the copy never affects g.
func (g *Group) Clone() *Group {
	return g.cloneNode().(*Group)
}

// checkAttach rejects cycles and names already present in the tree of g.
func (g *Group) checkAttach(n Node) error {
	names := make(map[string]struct{})
	g.eachGroup(func(sub *Group) {
		if sub.name != "" {
			names[sub.name] = struct{}{}
		}
	})

	var err error
	n.eachGroup(func(sub *Group) {
		if err != nil {
			return
		}
		if sub == g {
			err = ErrCycle
			return
		}
		if _, ok := names[sub.name]; ok && sub.name != "" {
			err = fmt.Errorf("%w: %q", ErrDuplicateName, sub.name)
		}
	})

	return err
}

// effectiveMode applies the promotion rule of Undefined groups.
func (g *Group) effectiveMode(q Quantifier, nested bool) CaptureMode {
	switch {
	case g.mode == Capturing || g.name != "":
		return Capturing
	case g.mode == NonCapturing:
		return NonCapturing
	case !q.IsNone():
		return NonCapturing
	case nested && g.combination == Alternative && len(g.terms) > 1:
		return NonCapturing
	}

	return Undefined
}

func (g *Group) render(c *compiler, q Quantifier, nested bool) {
	mode := g.effectiveMode(q, nested)
	switch mode {
	case Capturing:
		// The index is claimed where the opening parenthesis is written,
		// before any capturing group of the children.
		c.capture(g.name)
		c.write("(")
	case NonCapturing:
		c.write("(?:")
	}

	for i, t := range g.terms {
		if i > 0 && g.combination == Alternative {
			c.write("|")
		}
		t.node.render(c, t.quant, true)
	}

	if mode != Undefined {
		c.write(")")
	}
	c.write(q.String())
}

func (g *Group) check() error {
	if g == nil {
		return ErrNilNode
	}
	if g.err != nil {
		return g.err
	}
	for i, t := range g.terms {
		if err := t.node.check(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}

	return nil
}

func (g *Group) cloneNode() Node {
	c := &Group{
		combination: g.combination,
		mode:        g.mode,
		name:        g.name,
		err:         g.err,
		terms:       make([]term, len(g.terms)),
	}
	for i, t := range g.terms {
		c.terms[i] = term{node: t.node.cloneNode(), quant: t.quant}
	}

	return c
}

func (g *Group) eachGroup(fn func(*Group)) {
	fn(g)
	for _, t := range g.terms {
		t.node.eachGroup(fn)
	}
}
