package matcher

import "go.dw1.io/x/regexbuilder/json"

// Capture is the text a named group captured in a match.
type Capture struct {
	Name  string
	Value string
	Start int
	End   int
}

// Groups holds the captures of one match in declaration order.
type Groups []Capture

// Get returns the value captured by the group called name.
func (g Groups) Get(name string) (string, bool) {
	for _, c := range g {
		if c.Name == name {
			return c.Value, true
		}
	}

	return "", false
}

// Names returns the names of the groups that captured, in declaration order.
func (g Groups) Names() []string {
	names := make([]string, len(g))
	for i, c := range g {
		names[i] = c.Name
	}

	return names
}

// Map returns the captures keyed by name. The order is lost.
func (g Groups) Map() map[string]string {
	m := make(map[string]string, len(g))
	for _, c := range g {
		m[c.Name] = c.Value
	}

	return m
}

// MarshalJSON encodes g as an object of name to value, in declaration order.
func (g Groups) MarshalJSON() ([]byte, error) {
	members := make([]json.Member, len(g))
	for i, c := range g {
		members[i] = json.Member{Key: c.Name, Value: c.Value}
	}

	return json.MarshalObject(members)
}
