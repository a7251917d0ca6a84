package tui

import (
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"labyrinth/pkg/engine/items"
	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/engine/world"
	"labyrinth/pkg/game/renderer"
	"labyrinth/pkg/game/state"
)

// Icon constants for the labyrinth
const (
	IconWall       = "▒"
	IconRoom       = "·"
	IconOutside    = " "
	IconKey        = "⚷" // Key on the floor
	IconItem       = "?" // Anything else on the floor
	IconDoorLocked = "▣"
	IconDoorOpen   = "□"
)

// Player icons, indexed by world.Direction
var playerIcons = [...]string{"▲", "▶", "▼", "◀"}

// Viewport margins and minimum sizes
const (
	ViewportMinRows = 5
	ViewportMinCols = 9
	// Lines needed outside viewport:
	// - Step counter + blank (2)
	// - Facing + bag (3)
	// - Messages pane (header + 5 messages + footer = 7)
	ViewportTopMargin = 12
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorWall     color.Style
	colorRoom     color.Style
	colorKey      color.Style
	colorItem     color.Style
	colorDoor     color.Style
	colorDoorOpen color.Style
	colorPlayer   color.Style
	colorSubtle   color.Style
	colorAction   color.Style
	colorExit     color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorRoom = color.Style{color.FgGray, color.OpBold}
	t.colorKey = color.Style{color.FgBlue}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorDoorOpen = color.Style{color.FgYellow}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorExit = color.Style{color.FgGreen}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleKey:
		return t.colorKey.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleDoorOpen:
		return t.colorDoorOpen.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string) string {
	ret := msg

	for _, match := range t.regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = renderer.T(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "DOOR":
			val = t.colorDoor.Sprint(operand)
		case "EXIT":
			val = t.colorExit.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// viewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) viewportSize() (rows, cols int) {
	cols, rows = terminal.GetSize()
	rows -= ViewportTopMargin

	// Ensure minimum size
	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	return rows, cols
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(r *state.Run) {
	fmt.Fprint(t.out, t.colorAction.Sprint(renderer.T("STEP", r.Explorer.Steps())), "\n\n")

	t.printMap(r)

	facing := renderer.T(strings.ToUpper(r.Crawler.Direction().String()))
	fmt.Fprintf(t.out, "\n%s\n", t.colorSubtle.Sprint(renderer.T("FACING", facing)))

	t.printStatusBar(r)
	t.printMessagesPane(r)
}

// printMap renders the part of the grid around the crawler that fits the terminal
func (t *TUIRenderer) printMap(r *state.Run) {
	grid := r.Labyrinth.Grid
	rows, cols := t.viewportSize()
	rows = min(rows, grid.Rows())
	cols = min(cols, grid.Cols())

	startRow := clamp(r.Crawler.Row()-rows/2, 0, grid.Rows()-rows)
	startCol := clamp(r.Crawler.Col()-cols/2, 0, grid.Cols()-cols)

	var sb strings.Builder
	for row := startRow; row < startRow+rows; row++ {
		for col := startCol; col < startCol+cols; col++ {
			sb.WriteString(t.renderTile(r, row, col))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(t.out, sb.String())
}

// renderTile returns the string representation of a tile
func (t *TUIRenderer) renderTile(r *state.Run, row, col int) string {
	if row == r.Crawler.Row() && col == r.Crawler.Col() {
		return t.colorPlayer.Sprint(playerIcons[*r.Crawler.Direction()])
	}

	switch tile := r.Labyrinth.Grid.Tile(row, col).(type) {
	case *world.Wall:
		return t.colorWall.Sprint(IconWall)
	case *world.Door:
		if tile.IsOpened() {
			return t.colorDoorOpen.Sprint(IconDoorOpen)
		}
		return t.colorDoor.Sprint(IconDoorLocked)
	case *world.Room:
		if tile.HasKey() {
			return t.colorKey.Sprint(IconKey)
		}
		if len(tile.Contents()) > 0 {
			return t.colorItem.Sprint(IconItem)
		}
		return t.colorRoom.Sprint(IconRoom)
	default:
		return IconOutside
	}
}

// printStatusBar renders what the explorer carries
func (t *TUIRenderer) printStatusBar(r *state.Run) {
	fmt.Fprint(t.out, t.colorSubtle.Sprint(renderer.T("BAG")))

	bag := r.Explorer.Bag().Items()
	if len(bag) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.T("EMPTY")))
		return
	}

	names := make([]string, 0, len(bag))
	for _, c := range bag {
		style := t.colorItem
		if c.Kind() == items.KindKey {
			style = t.colorKey
		}
		names = append(names, style.Sprint(state.ItemName(c, renderer.T)))
	}
	fmt.Fprintln(t.out, strings.Join(names, t.colorSubtle.Sprint(", ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(r *state.Run) {
	width := terminal.GetWidth()

	label := renderer.T("MESSAGES")
	labelLen := len([]rune(label))
	sideLen := max((width-labelLen)/2, 1)
	rightLen := max(width-sideLen-labelLen, 1)

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))

	if len(r.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+renderer.T("NO_MESSAGES")))
	} else {
		for _, msg := range r.Messages {
			fmt.Fprintf(t.out, "  %s\n", msg)
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
