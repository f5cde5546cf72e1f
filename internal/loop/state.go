package loop

// State is the phase of one game.
type State int

const (
	StateMenu      State = iota // Title screen, asteroids drifting in the top half
	StatePlaying                // Ship alive, asteroids left
	StateRoundOver              // Ship destroyed
	StateWon                    // Every asteroid destroyed with the ship alive
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateRoundOver:
		return "round_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome tells the frame loop what to do after a tick.
type Outcome int

const (
	Continue Outcome = iota
	Restart          // Throw the game away and build a new one
	Quit
)

// menuItem is an entry of the title screen.
type menuItem int

const (
	itemPlay menuItem = iota
	itemToggleMode
	itemScoreTable
	itemChangeShip
	itemQuit
	menuItemCount
)

// key returns the key that selects the item.
func (m menuItem) key() byte {
	switch m {
	case itemPlay:
		return ' '
	case itemToggleMode:
		return 't'
	case itemScoreTable:
		return 's'
	case itemChangeShip:
		return 'c'
	default:
		return 'q'
	}
}
