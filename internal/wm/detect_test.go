package wm

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		want    string
		wantErr bool
	}{
		{
			name: "niri socket wins",
			goos: "linux",
			env: map[string]string{
				"NIRI_SOCKET":     "/run/user/1000/niri.sock",
				"WAYLAND_DISPLAY": "wayland-1",
				"DISPLAY":         ":0",
			},
			want: BackendNiri,
		},
		{
			name: "hyprland signature",
			goos: "linux",
			env: map[string]string{
				"HYPRLAND_INSTANCE_SIGNATURE": "abc123",
				"WAYLAND_DISPLAY":             "wayland-1",
			},
			want: BackendHyprland,
		},
		{
			name: "sway socket",
			goos: "linux",
			env: map[string]string{
				"SWAYSOCK":        "/run/user/1000/sway.sock",
				"WAYLAND_DISPLAY": "wayland-1",
				"DISPLAY":         ":0",
			},
			want: BackendSway,
		},
		{
			name: "plain x11 session",
			goos: "linux",
			env:  map[string]string{"DISPLAY": ":0"},
			want: BackendX11,
		},
		{
			name:    "unknown wayland compositor",
			goos:    "linux",
			env:     map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
			wantErr: true,
		},
		{
			name: "darwin ignores env",
			goos: "darwin",
			env:  map[string]string{},
			want: BackendDarwin,
		},
		{
			name:    "headless",
			goos:    "linux",
			env:     map[string]string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			r, err := detect(tt.goos, getenv)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", r.Name())
				}
				return
			}
			if err != nil {
				t.Fatalf("detect failed: %v", err)
			}
			if r.Name() != tt.want {
				t.Errorf("detect = %s, want %s", r.Name(), tt.want)
			}
		})
	}
}

func TestNewExplicitBackend(t *testing.T) {
	for _, name := range Backends() {
		r, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if r.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, r.Name())
		}
	}

	if _, err := New("compiz"); err == nil {
		t.Error("expected error for unknown backend")
	}
}
