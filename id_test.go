package pixgui_test

import (
	"fmt"
	"testing"

	"github.com/go-theft-auto/pixgui"
)

func TestGetIDIsStable(t *testing.T) {
	if pixgui.GetID("Save") != pixgui.GetID("Save") {
		t.Error("same label produced different IDs")
	}
	if pixgui.GetID("Save#a") == pixgui.GetID("Save#b") {
		t.Error("suffix did not change the ID")
	}
	if pixgui.GetID("Save") == pixgui.GetID("Save#") {
		t.Error("empty suffix did not change the ID")
	}
}

func TestGetIDHasNoCollisionsOnTypicalLabels(t *testing.T) {
	seen := make(map[pixgui.ID]string)
	add := func(label string) {
		id := pixgui.GetID(label)
		if prev, ok := seen[id]; ok && prev != label {
			t.Fatalf("GetID(%q) == GetID(%q)", label, prev)
		}
		seen[id] = label
	}
	for i := 0; i < 20000; i++ {
		add(fmt.Sprintf("Row %d", i))
		add(fmt.Sprintf("Delete##row%d", i))
		add(fmt.Sprintf("item-%04x", i))
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Save", "Save"},
		{"Save#dialog", "Save"},
		{"Save##dialog", "Save"},
		{"#hidden", ""},
		{"", ""},
		{"a#b#c", "a"},
	}
	for _, tt := range tests {
		if got := pixgui.DisplayLabel(tt.label); got != tt.want {
			t.Errorf("DisplayLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
