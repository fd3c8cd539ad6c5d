package catalog

import "testing"

func TestModes(t *testing.T) {
	m := Modes()
	if len(m) == 0 {
		t.Fatal("Modes() returned empty catalogue")
	}
	if m[0] != "spa" {
		t.Errorf("Modes()[0] = %q, want %q", m[0], "spa")
	}

	// Returned slice must be a copy
	m[0] = "mutated"
	if Modes()[0] != "spa" {
		t.Error("Modes() shares internal state with callers")
	}
}

func TestIsMode(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"spa", true},
		{"electron", true},
		{"cordova", true},
		{"", false},
		{"all", false},
		{"windows", false},
	}

	for _, tt := range tests {
		if got := IsMode(tt.name); got != tt.want {
			t.Errorf("IsMode(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTargets(t *testing.T) {
	for _, mode := range Modes() {
		ts := Targets(mode)
		if len(ts) == 0 {
			t.Errorf("Targets(%q) is empty", mode)
		}
		for _, target := range ts {
			if target.Name == "" || target.Generator == "" {
				t.Errorf("Targets(%q) contains incomplete target %+v", mode, target)
			}
			if target.Width <= 0 || target.Height <= 0 {
				t.Errorf("Targets(%q): %s has non-positive dimensions", mode, target.Name)
			}
		}
	}

	if Targets("unknown") != nil {
		t.Error("Targets(unknown) should be nil")
	}
}
