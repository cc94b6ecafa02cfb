package menu

import (
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

// layoutPadding separates stacked items and the screen edge.
const layoutPadding = 4.0

// TopDownLayout stacks items downward from a starting point.
type TopDownLayout struct {
	cursor  core.Vec2
	padding float64
}

// NewTopDownLayout starts stacking at start, which is the top-left corner
// of the first item.
func NewTopDownLayout(start core.Vec2, padding float64) *TopDownLayout {
	return &TopDownLayout{cursor: start, padding: padding}
}

// Place returns the bottom-left position for an item of the given size
// and advances below it.
func (l *TopDownLayout) Place(size core.Vec2) core.Vec2 {
	l.cursor.Y -= size.Y
	out := l.cursor
	l.cursor.Y -= l.padding
	return out
}

// PlaceWithOffset is Place shifted by offset.
func (l *TopDownLayout) PlaceWithOffset(size, offset core.Vec2) core.Vec2 {
	return l.Place(size).Add(offset)
}

// Placement is one positioned menu element.
type Placement struct {
	Sprite   string
	Body     core.Body
	Selected bool
	// Checked is only meaningful for the check box.
	Checked bool
}

// Layout positions the menu elements in world space. The title and the
// buttons stack from the top-left; the fullscreen toggle and its check box
// sit in the bottom-left corner.
func (m *Menu) Layout(fullscreen bool) []Placement {
	l := NewTopDownLayout(core.V(layoutPadding, m.screenSize.Y-layoutPadding), layoutPadding)
	indent := core.V(layoutPadding, 0)

	body := func(pos, size core.Vec2) core.Body {
		return core.Body{Pos: pos, Size: size}
	}

	return []Placement{
		{Sprite: sprites.Title, Body: body(l.Place(m.title), m.title)},
		{
			Sprite:   sprites.StartButton,
			Body:     body(l.PlaceWithOffset(m.start, indent), m.start),
			Selected: m.focus == FocusStart,
		},
		{
			Sprite:   sprites.ExitButton,
			Body:     body(l.PlaceWithOffset(m.exit, indent), m.exit),
			Selected: m.focus == FocusExit,
		},
		{
			Sprite:   sprites.FullscreenToggle,
			Body:     body(core.V(layoutPadding, layoutPadding), m.fullscreen),
			Selected: m.focus == FocusFullscreen,
		},
		{
			Sprite:  sprites.CheckBox,
			Body:    body(core.V(layoutPadding*2+m.fullscreen.X, layoutPadding), m.checkBox),
			Checked: fullscreen,
		},
	}
}
