package renderer

import (
	"labyrinth/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleRoom
	StyleKey
	StyleItem
	StyleDoor
	StyleDoorOpen
	StylePlayer
	StyleSubtle
	StyleAction
	StyleExit
)

// Renderer defines the interface for run rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame: the map, the bag and the messages
	RenderFrame(r *state.Run)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(r *state.Run) {
	if Current != nil {
		Current.RenderFrame(r)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string) string {
	if Current != nil {
		return Current.FormatText(msg)
	}
	return msg
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// Translate looks key up in the catalogue and formats the result with the
// current renderer's markup. It is the state.Translator the CLI narrates with.
func Translate(key string, args ...any) string {
	return FormatText(T(key, args...))
}
