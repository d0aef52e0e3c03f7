package types

import (
	"slices"
	"strings"
)

// TagConstraint is shown when a tag name fails validation.
const TagConstraint = "Tags names should be alphanumeric"

// Tag is a free-form label attached to a person.
type Tag struct {
	name string
}

// NewTag validates raw and returns it as a Tag.
func NewTag(raw string) (Tag, error) {
	if err := checkField("tag", tagTagName, raw, TagConstraint); err != nil {
		return Tag{}, err
	}
	return Tag{name: raw}, nil
}

// Name returns the tag label.
func (t Tag) Name() string { return t.name }

// String renders the tag the way it is shown in person summaries.
func (t Tag) String() string { return "[" + t.name + "]" }

// NewTags validates every raw value, failing on the first bad one.
func NewTags(raw ...string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		t, err := NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// tagSet returns tags sorted by name with duplicates removed. An empty input
// yields nil so that persons without tags compare equal.
func tagSet(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	out := slices.Clone(tags)
	slices.SortFunc(out, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return slices.CompactFunc(out, func(a, b Tag) bool { return a.name == b.name })
}

// JoinTags renders tags back to back, e.g. "[friend][husband]".
func JoinTags(tags []Tag) string {
	var b strings.Builder
	for _, t := range tags {
		b.WriteString(t.String())
	}
	return b.String()
}
