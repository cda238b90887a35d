package config

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/sassdocbuilder/internal/foundation/errors"
)

// GroupLabels maps group identifiers to human-readable labels.
type GroupLabels map[string]string

var labelSeparators = strings.NewReplacer("-", " ", "_", " ")

// LabelFor derives a display label from a group id ("theme-helpers" -> "Theme Helpers").
func LabelFor(id string) string {
	return cases.Title(language.English).String(labelSeparators.Replace(strings.TrimSpace(id)))
}

// Keys returns the group ids in sorted order.
func (g GroupLabels) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (g GroupLabels) withDerivedLabels() GroupLabels {
	if g == nil {
		return nil
	}
	out := make(GroupLabels, len(g))
	for id, label := range g {
		if strings.TrimSpace(label) == "" {
			label = LabelFor(id)
		}
		out[id] = label
	}
	return out
}

// GroupsFromPairs parses "id=Label" (or bare "id") entries. A repeated id is
// a validation error rather than a silent overwrite.
func GroupsFromPairs(pairs []string) (GroupLabels, error) {
	out := make(GroupLabels, len(pairs))
	for _, pair := range pairs {
		id, label, _ := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, ferrors.ValidationError("group id cannot be empty").
				WithContext("field", "groups").
				WithContext("entry", pair).
				Build()
		}
		if _, dup := out[id]; dup {
			return nil, duplicateKeyError("groups", id, 0)
		}
		out[id] = strings.TrimSpace(label)
	}
	return out.withDerivedLabels(), nil
}
