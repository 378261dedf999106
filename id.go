package pixgui

import (
	"hash/fnv"
	"strings"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same label.
type ID uint64

// labelSeparator splits the displayed part of a label from its
// disambiguating suffix: "OK#dialog" shows "OK" but hashes the whole string.
const labelSeparator = "#"

// GetID returns the stable ID for a label. The full label, suffix included,
// is hashed, so "Save#a" and "Save#b" are distinct widgets with the same text.
// Two widgets with an identical label share all interaction state.
func GetID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// DisplayLabel returns the part of a label shown on screen.
func DisplayLabel(label string) string {
	text, _, _ := strings.Cut(label, labelSeparator)
	return text
}

// scrollbarID derives the ID of a scroll area's scrollbar for one axis.
// Deriving it from the owner keeps it stable when the area moves.
func scrollbarID(owner ID, dir Direction) ID {
	h := fnv.New64a()
	var buf [9]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(owner >> (8 * i))
	}
	buf[8] = byte(dir)
	h.Write(buf[:])
	return ID(h.Sum64())
}
