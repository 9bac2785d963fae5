// Package topic defines the quiz topic catalog and custom topic authoring.
package topic

import "strings"

// CustomID is the Topic.ID used for user-authored topics.
const CustomID = "custom"

// Topic identifies the subject a session quizzes on.
type Topic struct {
	ID        string
	Name      string
	Subtopics []string
}

// IsCustom reports whether this topic was authored by the user rather
// than picked from the catalog.
func (t Topic) IsCustom() bool {
	return t.ID == CustomID
}

// PromptName returns the topic description sent to the question
// generator. Custom topics include their subtopics so generation can
// focus on them.
func (t Topic) PromptName() string {
	if len(t.Subtopics) == 0 {
		return t.Name
	}
	return t.Name + " (focus areas: " + strings.Join(t.Subtopics, ", ") + ")"
}

// Catalog is the fixed list of predefined topics, in display order.
func Catalog() []Topic {
	return []Topic{
		{ID: "data-structures", Name: "Data Structures"},
		{ID: "algorithms", Name: "Algorithms"},
		{ID: "web-development", Name: "Web Development"},
		{ID: "databases", Name: "Databases"},
		{ID: "operating-systems", Name: "Operating Systems"},
		{ID: "networking", Name: "Computer Networks"},
		{ID: "oops", Name: "Object Oriented Programming"},
		{ID: "python", Name: "Python Programming"},
		{ID: "javascript", Name: "JavaScript"},
		{ID: "react", Name: "React.js"},
	}
}

// ByID looks up a catalog topic. Returns (Topic{}, false) for unknown IDs.
func ByID(id string) (Topic, bool) {
	for _, t := range Catalog() {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// NewCustom builds a user-authored topic. The name must be non-empty
// after trimming; subtopics are parsed from a comma-separated list,
// trimmed, with empties dropped. Returns (Topic{}, false) when the name
// is blank.
func NewCustom(name, subtopicList string) (Topic, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Topic{}, false
	}
	return Topic{
		ID:        CustomID,
		Name:      name,
		Subtopics: ParseSubtopics(subtopicList),
	}, true
}

// ParseSubtopics splits a comma-separated subtopic list into trimmed
// non-empty entries, preserving order.
func ParseSubtopics(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
