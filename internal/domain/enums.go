package domain

import (
	"fmt"
	"strings"
)

// TaskStatus is the closed set of task progress states. Any state may move
// to any other; Todo -> Doing -> Done is only the usual path.
type TaskStatus string

const (
	StatusTodo  TaskStatus = "Todo"
	StatusDoing TaskStatus = "Doing"
	StatusDone  TaskStatus = "Done"
)

// Statuses lists every TaskStatus in progression order.
var Statuses = []TaskStatus{StatusTodo, StatusDoing, StatusDone}

// Valid reports whether s is one of the three known states.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusDoing, StatusDone:
		return true
	}
	return false
}

// Next returns the following state in the Todo -> Doing -> Done cycle,
// wrapping Done back to Todo.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case StatusTodo:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	default:
		return StatusTodo
	}
}

// ParseTaskStatus accepts a status name in any letter case.
func ParseTaskStatus(s string) (TaskStatus, error) {
	for _, st := range Statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want Todo, Doing or Done)", s)
}

// Color is a course tag from the fixed palette. It only drives presentation.
type Color string

const (
	ColorBlue    Color = "blue"
	ColorGreen   Color = "green"
	ColorPurple  Color = "purple"
	ColorRed     Color = "red"
	ColorYellow  Color = "yellow"
	ColorIndigo  Color = "indigo"
	ColorPink    Color = "pink"
	ColorTeal    Color = "teal"
	ColorOrange  Color = "orange"
	ColorCyan    Color = "cyan"
	ColorEmerald Color = "emerald"
	ColorViolet  Color = "violet"
	ColorRose    Color = "rose"
	ColorLime    Color = "lime"
)

// DefaultColor is used when a persisted course carries an unknown tag.
const DefaultColor = ColorBlue

// Palette is the canonical, ordered set of course colors.
var Palette = []Color{
	ColorBlue, ColorGreen, ColorPurple, ColorRed, ColorYellow, ColorIndigo, ColorPink,
	ColorTeal, ColorOrange, ColorCyan, ColorEmerald, ColorViolet, ColorRose, ColorLime,
}

func (c Color) Valid() bool {
	for _, p := range Palette {
		if c == p {
			return true
		}
	}
	return false
}

// ParseColor accepts a palette name in any letter case.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
