package chord

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Chord
		wantErr bool
	}{
		{
			name:  "plain letter",
			input: "c",
			want:  Chord{Key: "c"},
		},
		{
			name:  "ctrl+c",
			input: "ctrl+c",
			want:  Chord{Ctrl: true, Key: "c"},
		},
		{
			name:  "terminal copy chord",
			input: "ctrl+shift+c",
			want:  Chord{Ctrl: true, Shift: true, Key: "c"},
		},
		{
			name:  "modifier case insensitive",
			input: "Ctrl+Shift+V",
			want:  Chord{Ctrl: true, Shift: true, Key: "v"},
		},
		{
			name:  "opt alias for alt",
			input: "opt+tab",
			want:  Chord{Alt: true, Key: "tab"},
		},
		{
			name:  "cmd alias for super",
			input: "cmd+c",
			want:  Chord{Super: true, Key: "c"},
		},
		{
			name:  "special key with alias",
			input: "ctrl+esc",
			want:  Chord{Ctrl: true, Key: "escape"},
		},
		{
			name:  "return alias for enter",
			input: "shift+Return",
			want:  Chord{Shift: true, Key: "enter"},
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only modifiers",
			input:   "ctrl+shift",
			wantErr: true,
		},
		{
			name:    "two base keys",
			input:   "ctrl+a+b",
			wantErr: true,
		},
		{
			name:    "unknown special key",
			input:   "ctrl+banana",
			wantErr: true,
		},
		{
			name:    "trailing plus",
			input:   "ctrl+",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %+v, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringCanonicalOrder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"shift+ctrl+c", "ctrl+shift+c"},
		{"c", "c"},
		{"super+alt+ctrl+shift+f", "ctrl+alt+shift+super+f"},
		{"CTRL+V", "ctrl+v"},
	}

	for _, tt := range tests {
		c, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.input, err)
		}
		if got := c.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"ctrl+c", "ctrl+shift+v", "alt+tab", "super+space"} {
		c, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		again, err := Parse(c.String())
		if err != nil {
			t.Fatalf("re-parsing %q failed: %v", c.String(), err)
		}
		if again != c {
			t.Errorf("round trip changed chord: %+v -> %+v", c, again)
		}
	}
}
