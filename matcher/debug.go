package matcher

// Debug helps locate the trailing part of a tree that prevents a match. It
// clones the tree as it was when m was created, drops its top-level children one at a time starting
// with the most recently added, and returns a Matcher positioned on the
// first match of the largest prefix that matches the input. ok is false when
// no non-empty prefix matches.
//
// Debug recompiles the tree once per attempt and is not meant for
// production use. The receiver's cursor is left untouched.
func (m *Matcher) Debug() (*Matcher, bool, error) {
	n := m.tree.Len()
	for keep := n; keep > 0; keep-- {
		trimmed := m.tree.Clone().Truncate(keep)

		cm, err := newMatcher(trimmed, m.input, m.opts)
		if err != nil {
			return nil, false, err
		}
		if cm.Find() {
			m.opts.logger.Debugf("matching prefix: %d of %d children: %s", keep, n, cm.Pattern())
			return cm, true, nil
		}
		if err := cm.Err(); err != nil {
			return nil, false, err
		}

		m.opts.logger.Debugf("no match with %d of %d children: %s", keep, n, cm.Pattern())
	}

	return nil, false, nil
}
