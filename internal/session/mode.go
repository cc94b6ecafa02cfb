package session

// Mode is the host's current activity. It is either MenuMode or PlayMode.
type Mode interface {
	isMode()
	String() string
}

// MenuMode routes controller edges to the menu.
type MenuMode struct{}

// PlayMode routes the controller to the movement system.
type PlayMode struct {
	// Round counts started rounds, starting at 1.
	Round int
}

func (MenuMode) isMode() {}
func (PlayMode) isMode() {}

func (MenuMode) String() string { return "menu" }
func (PlayMode) String() string { return "play" }
