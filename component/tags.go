package component

import "strings"

// Tags is a set of zero-data classification markers
type Tags uint8

const (
	TagBall Tags = 1 << iota
	TagBarrier
	TagGoal // Reserved, no system consumes it yet

	TagNone Tags = 0
)

var tagNames = []struct {
	tag  Tags
	name string
}{
	{TagBall, "ball"},
	{TagBarrier, "barrier"},
	{TagGoal, "goal"},
}

// Has reports whether every bit of want is present
func (t Tags) Has(want Tags) bool {
	return want != 0 && t&want == want
}

// With returns t plus the given tags
func (t Tags) With(add Tags) Tags {
	return t | add
}

func (t Tags) String() string {
	if t == TagNone {
		return "none"
	}
	var parts []string
	for _, tn := range tagNames {
		if t&tn.tag != 0 {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseTag resolves a tag name, case-insensitive
func ParseTag(name string) (Tags, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, tn := range tagNames {
		if tn.name == name {
			return tn.tag, true
		}
	}
	return TagNone, false
}
