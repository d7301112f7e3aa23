package classify

import "testing"

func TestClassifyDefaultRules(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		appID string
		want  Action
	}{
		{"foot", "foot", ActionTerminal},
		{"alacritty", "Alacritty", ActionDefault}, // matching is case-sensitive
		{"alacritty lowercase", "alacritty", ActionTerminal},
		{"kitty", "kitty", ActionTerminal},
		{"wezterm flatpak style id", "org.wezfurlong.wezterm", ActionTerminal},
		{"konsole", "org.kde.konsole", ActionTerminal},
		{"xterm", "xterm", ActionTerminal},
		{"urxvt", "urxvt", ActionTerminal},
		{"termite", "termite", ActionTerminal},
		{"ghostty", "com.mitchellh.ghostty", ActionTerminal},
		{"gnome terminal", "org.gnome.Console.terminal", ActionTerminal},
		{"firefox", "firefox", ActionDefault},
		{"chromium", "org.chromium.Chromium", ActionDefault},
		{"empty identifier", "", ActionDefault},
		{"bare term is not a terminal", "term", ActionDefault},
		// "xterm" contains "term" but rule patterns are matched against
		// the identifier, not the other way around.
		{"substring containment direction", "xter", ActionDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.appID, rules); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.appID, got, tt.want)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Pattern: "special-kitty", Action: ActionDefault},
		{Pattern: "kitty", Action: ActionTerminal},
	}

	// Both patterns match; the first listed rule decides.
	if got := Classify("special-kitty", rules); got != ActionDefault {
		t.Errorf("Classify should honor rule order, got %q", got)
	}
	if got := Classify("kitty", rules); got != ActionTerminal {
		t.Errorf("Classify(%q) = %q, want terminal", "kitty", got)
	}

	// Reversed order flips the outcome for the overlapping identifier.
	reversed := []Rule{rules[1], rules[0]}
	if got := Classify("special-kitty", reversed); got != ActionTerminal {
		t.Errorf("Classify with reversed rules = %q, want terminal", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	rules := DefaultRules()
	for range 5 {
		if got := Classify("org.wezfurlong.wezterm", rules); got != ActionTerminal {
			t.Fatalf("Classify result changed across calls: %q", got)
		}
	}
}

func TestClassifyEmptyAndNilRules(t *testing.T) {
	if got := Classify("kitty", nil); got != ActionDefault {
		t.Errorf("Classify with nil rules = %q, want default", got)
	}
	if got := Classify("kitty", []Rule{{Pattern: "", Action: ActionTerminal}}); got != ActionDefault {
		t.Errorf("empty patterns must never match, got %q", got)
	}
}

func TestActionValid(t *testing.T) {
	if !ActionTerminal.Valid() || !ActionDefault.Valid() {
		t.Error("built-in actions must be valid")
	}
	if Action("tmux").Valid() {
		t.Error("unknown action reported valid")
	}
}
