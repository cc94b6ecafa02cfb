package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/games/breakout"
	"github.com/vovakirdan/brick-breaker/internal/menu"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps world coordinates (y up) onto a screen area (y down).
type Viewport struct {
	Arena core.Vec2
	Area  core.Rect
}

func (v Viewport) scale() (sx, sy float64) {
	return float64(v.Area.W) / v.Arena.X, float64(v.Area.H) / v.Arena.Y
}

// CellRect returns the cells covered by a world body. Every body covers
// at least one cell.
func (v Viewport) CellRect(b core.Body) core.Rect {
	sx, sy := v.scale()

	x0 := int(math.Round(b.Pos.X * sx))
	x1 := int(math.Round(b.Right() * sx))
	top := int(math.Round((v.Arena.Y - b.Top()) * sy))
	bottom := int(math.Round((v.Arena.Y - b.Pos.Y) * sy))

	w := max(x1-x0, 1)
	h := max(bottom-top, 1)
	return core.NewRect(v.Area.X+x0, v.Area.Y+top, w, h)
}

// hudHeight is the number of status rows above the play field.
const hudHeight = 1

// Renderer draws sessions into a Screen.
type Renderer struct {
	arena core.Vec2
}

// NewRenderer creates a renderer for the given arena size.
func NewRenderer(arena core.Vec2) *Renderer {
	return &Renderer{arena: arena}
}

// viewport is the play field below the HUD.
func (r *Renderer) viewport(s *core.Screen) Viewport {
	return Viewport{
		Arena: r.arena,
		Area:  core.NewRect(0, hudHeight, s.Width(), max(s.Height()-hudHeight, 1)),
	}
}

// Hud is the status line content.
type Hud struct {
	Score      int
	HighScore  int
	BricksLeft int
	Round      int
	Message    string
}

// DrawPlay draws the world and the HUD.
func (r *Renderer) DrawPlay(scr *core.Screen, st *breakout.State, hud Hud) {
	scr.Clear()
	vp := r.viewport(scr)

	for _, b := range st.Bricks {
		rect := vp.CellRect(b.Body)
		color := core.StatusColor(b.Status, st.BrickStatus)
		scr.DrawRect(rect, '█', color)
		if rect.W >= 2 {
			// Brick edges keep adjacent bricks apart
			for y := rect.Y; y < rect.Bottom(); y++ {
				scr.SetColored(rect.Right()-1, y, '▌', color)
			}
		}
	}

	scr.DrawRect(vp.CellRect(st.Player.Body), '=', core.ColorCyan)
	scr.DrawRect(vp.CellRect(st.Ball.Body), 'O', core.ColorWhite)

	line := fmt.Sprintf(" SCORE %d   HIGH %d   BRICKS %d   ROUND %d", hud.Score, hud.HighScore, hud.BricksLeft, hud.Round)
	scr.DrawTextColored(0, 0, line, core.ColorYellow)
	if !st.Ball.Fired {
		scr.DrawTextColored(max(scr.Width()-len(hud.Message)-1, len(line)+2), 0, hud.Message, core.ColorGray)
	}
}

// spriteLabels is the text drawn inside menu sprites.
var spriteLabels = map[string]string{
	sprites.Title:            "BRICK BREAKER",
	sprites.StartButton:      "START",
	sprites.ExitButton:       "EXIT",
	sprites.FullscreenToggle: "FULLSCREEN",
}

// DrawMenu draws the menu placements.
func (r *Renderer) DrawMenu(scr *core.Screen, placements []menu.Placement, footer string) {
	scr.Clear()
	vp := r.viewport(scr)

	for _, p := range placements {
		rect := vp.CellRect(p.Body)
		color := core.ColorWhite
		if p.Selected {
			color = core.ColorYellow
		}

		label := spriteLabels[p.Sprite]
		switch p.Sprite {
		case sprites.Title:
			color = core.ColorCyan
		case sprites.CheckBox:
			label = "[ ]"
			if p.Checked {
				label = "[x]"
			}
		}
		if p.Selected {
			label = "> " + label + " <"
		}

		scr.DrawBox(rect, color)
		cx := rect.X + (rect.W-len([]rune(label)))/2
		cy := rect.Y + rect.H/2
		scr.DrawTextColored(max(cx, rect.X), cy, label, color)
	}

	if footer != "" {
		scr.DrawTextColored(1, 0, footer, core.ColorGray)
	}
}
