package matcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go.dw1.io/x/regexbuilder/builder"
	"go.dw1.io/x/regexbuilder/cast"
	"go.dw1.io/x/regexbuilder/json"
	"go.dw1.io/x/regexbuilder/regexp"
	"go.dw1.io/x/regexbuilder/samples"
)

func mustNew(t *testing.T, b *builder.Builder, input string, opts ...Option) *Matcher {
	t.Helper()

	m, err := New(b, input, opts...)
	if err != nil {
		t.Fatalf("new matcher: %v", err)
	}

	return m
}

func isoDate() *builder.Builder {
	digits := func(name string, n int) *builder.Group {
		return builder.SequenceGroup().SetName(name).Exactly(builder.Class(builder.Numeric), n)
	}

	b := builder.New()
	b.Unique(digits("year", 4)).
		Unique(builder.Text("-")).
		Unique(digits("month", 2)).
		Unique(builder.Text("-")).
		Unique(digits("day", 2))

	return b
}

func TestAccessorsRequireFind(t *testing.T) {
	m := mustNew(t, isoDate(), "2024-01-02")

	checks := map[string]func() error{
		"Group":        func() error { _, err := m.Group(); return err },
		"GroupByName":  func() error { _, _, err := m.GroupByName("day"); return err },
		"GroupAsInt":   func() error { _, _, err := m.GroupAsInt("day"); return err },
		"GroupAsFloat": func() error { _, _, err := m.GroupAsFloat("day"); return err },
		"Start":        func() error { _, err := m.Start(); return err },
		"End":          func() error { _, err := m.End(); return err },
		"StartOf":      func() error { _, _, err := m.StartOf("day"); return err },
		"EndOf":        func() error { _, _, err := m.EndOf("day"); return err },
		"Replace":      func() error { _, _, err := m.Replace("day", "15"); return err },
		"Groups":       func() error { _, err := m.Groups(); return err },
	}

	for name, call := range checks {
		if err := call(); !errors.Is(err, ErrNoMatch) {
			t.Fatalf("%s before Find: error = %v, want ErrNoMatch", name, err)
		}
	}

	if !m.Find() {
		t.Fatalf("expected a match")
	}
	if m.Find() {
		t.Fatalf("expected no second match")
	}
	if err := m.Err(); err != nil {
		t.Fatalf("unexpected engine error: %v", err)
	}
	for name, call := range checks {
		if err := call(); !errors.Is(err, ErrNoMatch) {
			t.Fatalf("%s after exhausted Find: error = %v, want ErrNoMatch", name, err)
		}
	}
}

func TestReplace(t *testing.T) {
	input := "2024-01-02"
	m := mustNew(t, isoDate(), input)
	if !m.Find() {
		t.Fatalf("expected a match")
	}

	day, ok, err := m.GroupByName("day")
	if err != nil || !ok || day != "02" {
		t.Fatalf("GroupByName(day) = %q, %v, %v", day, ok, err)
	}

	got, ok, err := m.Replace("day", "15")
	if err != nil || !ok {
		t.Fatalf("Replace: ok=%v err=%v", ok, err)
	}
	if got != "2024-01-15" {
		t.Fatalf("Replace = %q, want %q", got, "2024-01-15")
	}
	if m.Input() != input {
		t.Fatalf("Replace mutated the input: %q", m.Input())
	}

	got, _, _ = m.Replace("year", "1999")
	if got != "1999-01-02" {
		t.Fatalf("Replace(year) = %q", got)
	}

	if _, _, err := m.Replace("week", "1"); !errors.Is(err, builder.ErrGroupNotFound) {
		t.Fatalf("Replace(week) error = %v, want ErrGroupNotFound", err)
	}
}

func TestFullWrittenDate(t *testing.T) {
	m := mustNew(t, samples.FullWrittenDateEN(), "Posted on March 3rd 2021.")
	if !m.Find() {
		t.Fatalf("expected a match for %q", m.Pattern())
	}

	whole, err := m.Group()
	if err != nil || whole != "March 3rd 2021" {
		t.Fatalf("Group() = %q, %v", whole, err)
	}

	groups, err := m.Groups()
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	want := Groups{
		{Name: "month", Value: "March", Start: 10, End: 15},
		{Name: "day", Value: "3rd", Start: 16, End: 19},
		{Name: "year", Value: "2021", Start: 20, End: 24},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}

	year, ok, err := m.GroupAsInt("year")
	if err != nil || !ok || year != 2021 {
		t.Fatalf("GroupAsInt(year) = %d, %v, %v", year, ok, err)
	}

	if _, _, err := m.GroupAsInt("day"); !errors.Is(err, cast.ErrParse) {
		t.Fatalf("GroupAsInt(day) error = %v, want ErrParse", err)
	}

	encoded, err := json.Marshal(groups)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(encoded), `{"month":"March","day":"3rd","year":"2021"}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}

	var decoded map[string]string
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(groups.Map(), decoded); diff != "" {
		t.Fatalf("json round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAbsentGroup(t *testing.T) {
	b := builder.NewAlternative()
	b.Unique(builder.SequenceGroup().SetName("number").Some(builder.Class(builder.Numeric))).
		Unique(builder.SequenceGroup().SetName("word").Some(builder.Class(builder.Alphabetic)))

	m := mustNew(t, b, "hello")
	if !m.Find() {
		t.Fatalf("expected a match")
	}

	v, ok, err := m.GroupByName("number")
	if err != nil || ok || v != "" {
		t.Fatalf("GroupByName(number) = %q, %v, %v; want absent", v, ok, err)
	}
	if _, ok, err := m.GroupAsInt("number"); err != nil || ok {
		t.Fatalf("GroupAsInt(number) = %v, %v; want absent", ok, err)
	}
	if _, ok, err := m.GroupAsFloat("number"); err != nil || ok {
		t.Fatalf("GroupAsFloat(number) = %v, %v; want absent", ok, err)
	}
	if _, ok, err := m.StartOf("number"); err != nil || ok {
		t.Fatalf("StartOf(number) = %v, %v; want absent", ok, err)
	}
	if _, ok, err := m.EndOf("number"); err != nil || ok {
		t.Fatalf("EndOf(number) = %v, %v; want absent", ok, err)
	}
	if got, ok, err := m.Replace("number", "42"); err != nil || ok || got != "hello" {
		t.Fatalf("Replace(number) = %q, %v, %v; want input unchanged", got, ok, err)
	}

	groups, err := m.Groups()
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if diff := cmp.Diff([]string{"word"}, groups.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if _, ok := groups.Get("number"); ok {
		t.Fatalf("absent group listed in Groups")
	}
	if got := groups.Map(); got["word"] != "hello" || len(got) != 1 {
		t.Fatalf("Map() = %v", got)
	}

	if _, _, err := m.GroupByName("undeclared"); !errors.Is(err, builder.ErrGroupNotFound) {
		t.Fatalf("GroupByName(undeclared) error = %v, want ErrGroupNotFound", err)
	}
}

func TestFindIteratesAndNumbers(t *testing.T) {
	b := builder.New()
	b.Unique(builder.SequenceGroup().SetName("amount").
		Some(builder.Class(builder.Numeric)).
		Optional(builder.SequenceGroup().
			Unique(builder.Text(".")).
			Some(builder.Class(builder.Numeric)))).
		Unique(builder.Text("€"))

	m := mustNew(t, b, "3.50€ then 12€")

	var amounts []float64
	var starts []int
	for m.Find() {
		v, ok, err := m.GroupAsFloat("amount")
		if err != nil || !ok {
			t.Fatalf("GroupAsFloat: %v, %v", ok, err)
		}
		amounts = append(amounts, v)

		s, ok, err := m.StartOf("amount")
		if err != nil || !ok {
			t.Fatalf("StartOf: %v, %v", ok, err)
		}
		starts = append(starts, s)
	}

	if diff := cmp.Diff([]float64{3.5, 12}, amounts); diff != "" {
		t.Fatalf("amounts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 13}, starts); diff != "" {
		t.Fatalf("starts mismatch (-want +got):\n%s", diff)
	}
}

func TestLookaroundOffsets(t *testing.T) {
	b := builder.New()
	b.Unique(builder.Lookbehind(builder.Text("é"))).
		Unique(builder.SequenceGroup().SetName("n").Some(builder.Class(builder.Numeric))).
		Unique(builder.NotLookahead(builder.Text("%")))

	m := mustNew(t, b, "é12% é34")
	if m.Engine() != regexp.PCRE {
		t.Fatalf("expected the regexp2 engine for %q", m.Pattern())
	}
	if !m.Find() {
		t.Fatalf("expected a match")
	}

	start, err := m.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	end, err := m.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	// "12" is followed by "%", so the first match backtracks to "1".
	got := []int{start, end}
	if diff := cmp.Diff([]int{2, 3}, got); diff != "" {
		t.Fatalf("first match offsets mismatch (-want +got):\n%s", diff)
	}

	if !m.Find() {
		t.Fatalf("expected a second match")
	}
	n, ok, err := m.GroupByName("n")
	if err != nil || !ok || n != "34" {
		t.Fatalf("GroupByName(n) = %q, %v, %v", n, ok, err)
	}
	endOf, _, _ := m.EndOf("n")
	if endOf != len("é12% é34") {
		t.Fatalf("EndOf(n) = %d, want %d", endOf, len("é12% é34"))
	}
}

func TestWithFlags(t *testing.T) {
	b := builder.New()
	b.Unique(builder.SequenceGroup().SetName("w").Unique(builder.Text("hello")))

	if mustNew(t, b, "HELLO").Find() {
		t.Fatalf("expected case-sensitive matching by default")
	}

	m := mustNew(t, b, "HELLO", WithFlags(regexp.IgnoreCase))
	if !m.Find() {
		t.Fatalf("expected a case-insensitive match")
	}
	if v, _, _ := m.GroupByName("w"); v != "HELLO" {
		t.Fatalf("GroupByName(w) = %q", v)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, "x"); !errors.Is(err, builder.ErrNilNode) {
		t.Fatalf("New(nil) error = %v, want ErrNilNode", err)
	}

	b := builder.New()
	b.Between(builder.Text("x"), 2, 1)
	if _, err := New(b, "x"); !errors.Is(err, builder.ErrInvalidQuantifier) {
		t.Fatalf("New(invalid) error = %v, want ErrInvalidQuantifier", err)
	}
}

func TestMatcherSnapshotsTree(t *testing.T) {
	b := builder.New()
	b.Unique(builder.SequenceGroup().SetName("a").Unique(builder.Text("a")))

	m := mustNew(t, b, "ab")
	b.Unique(builder.SequenceGroup().SetName("b").Unique(builder.Text("b")))

	if !m.Find() {
		t.Fatalf("expected a match")
	}
	if _, _, err := m.GroupByName("b"); !errors.Is(err, builder.ErrGroupNotFound) {
		t.Fatalf("group added after New resolved: %v", err)
	}
	if m.Builder() != b {
		t.Fatalf("Builder() does not return the source builder")
	}

	b.Unique(builder.Text("zzz"))
	dm, ok, err := m.Debug()
	if err != nil || !ok {
		t.Fatalf("Debug() = %v, %v", ok, err)
	}
	if got, want := dm.Pattern(), "(a)"; got != want {
		t.Fatalf("debug pattern = %q, want %q", got, want)
	}
}

func TestRepeatedNamedGroup(t *testing.T) {
	tests := []struct {
		name  string
		b     func() *builder.Builder
		input string
		group string
		want  string
		start int
	}{
		{
			name: "some",
			b: func() *builder.Builder {
				b := builder.New()
				b.Some(builder.SequenceGroup().SetName("w").Unique(builder.Text("ab")))
				return b
			},
			input: "xxabab",
			group: "w",
			want:  "ab",
			start: 4,
		},
		{
			name: "between",
			b: func() *builder.Builder {
				b := builder.New()
				b.Unique(builder.Text("id=")).
					Between(builder.SequenceGroup().SetName("digit").Unique(builder.Class(builder.Numeric)), 1, 5)
				return b
			},
			input: "id=123",
			group: "digit",
			want:  "3",
			start: 5,
		},
		{
			name: "any",
			b: func() *builder.Builder {
				b := builder.New()
				b.Unique(builder.Text("<")).
					Any(builder.SequenceGroup().SetName("c").Unique(builder.Class(builder.Lowercase))).
					Unique(builder.Text(">"))
				return b
			},
			input: "<xyz>",
			group: "c",
			want:  "z",
			start: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t, tt.b(), tt.input)
			if !m.Find() {
				t.Fatalf("%q did not match %q", m.Pattern(), tt.input)
			}

			v, ok, err := m.GroupByName(tt.group)
			if err != nil || !ok || v != tt.want {
				t.Fatalf("%s: GroupByName(%s) = %q, %v, %v; want %q", m.Engine(), tt.group, v, ok, err, tt.want)
			}
			start, ok, err := m.StartOf(tt.group)
			if err != nil || !ok || start != tt.start {
				t.Fatalf("StartOf(%s) = %d, %v, %v; want %d", tt.group, start, ok, err, tt.start)
			}

			groups, err := m.Groups()
			if err != nil {
				t.Fatalf("Groups: %v", err)
			}
			if got, _ := groups.Get(tt.group); got != tt.want {
				t.Fatalf("Groups().Get(%s) = %q, want %q", tt.group, got, tt.want)
			}
		})
	}
}

func TestDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core).Sugar()

	b := builder.New()
	b.Unique(builder.Text("abc")).
		Unique(builder.SequenceGroup().SetName("digits").Some(builder.Class(builder.Numeric))).
		Unique(builder.Text("x")).
		Unique(builder.Text("y"))

	m := mustNew(t, b, "abc123z", WithLogger(logger))
	if m.Find() {
		t.Fatalf("full pattern should not match")
	}

	dm, ok, err := m.Debug()
	if err != nil || !ok {
		t.Fatalf("Debug() = %v, %v", ok, err)
	}
	if got, want := dm.Pattern(), `abc([0-9]+)`; got != want {
		t.Fatalf("debug pattern = %q, want %q", got, want)
	}
	if v, _, _ := dm.GroupByName("digits"); v != "123" {
		t.Fatalf("debug matcher group = %q", v)
	}
	if b.Len() != 4 {
		t.Fatalf("Debug changed the original tree: %d children", b.Len())
	}

	if logs.FilterMessageSnippet("matching prefix: 2 of 4 children").Len() != 1 {
		t.Fatalf("missing debug log for the matching prefix, got %v", logs.All())
	}
	if logs.FilterMessageSnippet("no match with").Len() != 2 {
		t.Fatalf("expected two failed attempts to be logged, got %v", logs.All())
	}

	none := mustNew(t, b, "zzz")
	if dm, ok, err := none.Debug(); err != nil || ok || dm != nil {
		t.Fatalf("Debug() on unmatched input = %v, %v, %v", dm, ok, err)
	}
}
