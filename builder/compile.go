package builder

import (
	"fmt"
	"strings"
)

// compiler carries the state of one depth-first rendering pass: the pattern
// written so far and the capture counter shared by the whole tree.
type compiler struct {
	sb        strings.Builder
	captures  int
	names     []string
	positions map[string]int
	err       error
}

func newCompiler() *compiler {
	return &compiler{positions: make(map[string]int)}
}

func (c *compiler) write(s string) {
	c.sb.WriteString(s)
}

// capture claims the next capture index, recording it under name when the
// group is named.
func (c *compiler) capture(name string) {
	c.captures++
	if name == "" {
		return
	}

	if _, dup := c.positions[name]; dup {
		if c.err == nil {
			c.err = fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return
	}
	c.positions[name] = c.captures
	c.names = append(c.names, name)
}

// Program is the result of compiling a tree: the pattern and the position
// table of its named groups.
type Program struct {
	pattern   string
	captures  int
	names     []string
	positions map[string]int
}

// Pattern returns the compiled pattern.
func (p *Program) Pattern() string { return p.pattern }

// NumCaptures returns the number of capturing groups in the pattern, named
// or not.
func (p *Program) NumCaptures() int { return p.captures }

// Names returns the group names in declaration order, which is also the
// order of their capture indexes.
func (p *Program) Names() []string {
	return append([]string(nil), p.names...)
}

// Position returns the 1-based capture index of the group called name.
func (p *Program) Position(name string) (int, error) {
	pos, ok := p.positions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrGroupNotFound, name)
	}

	return pos, nil
}

// Program compiles the tree rooted at g. It does not modify the tree, and
// compiling an unchanged tree twice yields identical programs.
func (g *Group) Program() (*Program, error) {
	if err := g.check(); err != nil {
		return nil, err
	}

	c := newCompiler()
	g.render(c, None, false)
	if c.err != nil {
		return nil, c.err
	}

	return &Program{
		pattern:   c.sb.String(),
		captures:  c.captures,
		names:     c.names,
		positions: c.positions,
	}, nil
}

// Compile renders the tree rooted at g to a pattern string.
func (g *Group) Compile() (string, error) {
	p, err := g.Program()
	if err != nil {
		return "", err
	}

	return p.Pattern(), nil
}

// FindGroupPosition returns the capture index the engine will assign to the
// group called name. Index 0 is the whole match, so a found group is always
// at 1 or more.
func (g *Group) FindGroupPosition(name string) (int, error) {
	p, err := g.Program()
	if err != nil {
		return 0, err
	}

	return p.Position(name)
}

// String returns the compiled pattern, or "" if the tree is invalid.
func (g *Group) String() string {
	s, _ := g.Compile()
	return s
}
