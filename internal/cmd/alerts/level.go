package alerts

import "fmt"

// Level represents the severity of an alert.
type Level int

const (
	// LevelError indicates a failure or error condition.
	LevelError Level = iota
	// LevelWarning indicates a potential issue or important notice.
	LevelWarning
	// LevelInfo indicates a neutral outcome such as an empty result.
	LevelInfo
	// LevelSuccess indicates a completed change to the catalog.
	LevelSuccess
)

type style struct {
	name  string
	icon  string
	color string
}

// styles is indexed by Level.
var styles = [...]style{
	LevelError:   {name: "error", icon: "✗", color: "\033[31m"},
	LevelWarning: {name: "warning", icon: "!", color: "\033[33m"},
	LevelInfo:    {name: "info", icon: "i", color: "\033[36m"},
	LevelSuccess: {name: "success", icon: "✓", color: "\033[32m"},
}

const resetColor = "\033[0m"

func (l Level) valid() bool {
	return l >= 0 && int(l) < len(styles)
}

// String returns the level name used in json and yaml alerts.
func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("unknown(%d)", int(l))
	}
	return styles[l].name
}

// Icon returns the symbol printed in front of the message.
func (l Level) Icon() string {
	if !l.valid() {
		return "?"
	}
	return styles[l].icon
}

// Color returns the ANSI color used for the level on a terminal.
func (l Level) Color() string {
	if !l.valid() {
		return resetColor
	}
	return styles[l].color
}
