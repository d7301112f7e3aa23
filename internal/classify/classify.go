// Package classify decides which action a focused window maps to.
//
// Classification is an ordered linear scan over substring rules with
// first-match-wins semantics. It is total: an identifier that matches no
// rule, and the absent identifier, both resolve to ActionDefault.
package classify

import "strings"

// Action is the dispatch behavior selected for a window.
type Action string

const (
	// ActionTerminal selects terminal-style chords (e.g. ctrl+shift+c).
	ActionTerminal Action = "terminal"
	// ActionDefault selects the regular chords (e.g. ctrl+c).
	ActionDefault Action = "default"
)

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	return a == ActionTerminal || a == ActionDefault
}

// Rule binds a case-sensitive substring pattern to an action.
type Rule struct {
	Pattern string
	Action  Action
}

// DefaultRules returns the compiled-in rule table. Order matters: the
// first matching pattern wins, so user rules are prepended, not sorted.
func DefaultRules() []Rule {
	patterns := []string{
		"foot",
		"alacritty",
		"kitty",
		"wezterm",
		"konsole",
		"xterm",
		"urxvt",
		"termite",
		"ghostty",
		"terminal",
	}
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		rules = append(rules, Rule{Pattern: p, Action: ActionTerminal})
	}
	return rules
}

// Classify evaluates rules in order against the application identifier
// and returns the action of the first rule whose pattern is a substring
// of it. Matching is case-sensitive. An empty identifier or an exhausted
// rule list yields ActionDefault.
func Classify(appID string, rules []Rule) Action {
	if appID == "" {
		return ActionDefault
	}
	for _, r := range rules {
		if r.Pattern == "" {
			continue
		}
		if strings.Contains(appID, r.Pattern) {
			return r.Action
		}
	}
	return ActionDefault
}
