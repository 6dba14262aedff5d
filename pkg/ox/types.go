package ox

type Mark uint8

const (
	Empty  Mark = 0
	Cross  Mark = 1
	Circle Mark = 2
)

// Characters used in String() and notation, indexed by Mark
var MarksAsChar = [...]byte{'.', 'x', 'o'}

// Mark placed by player 0 and player 1
var PlayerToMark = [2]Mark{Cross, Circle}

func (m Mark) String() string {
	if int(m) >= len(MarksAsChar) {
		return "?"
	}
	return string(MarksAsChar[m])
}

// Other player's mark, Empty stays Empty
func (m Mark) Opposite() Mark {
	switch m {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return Empty
}

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCrossWon  Termination = 1
	TerminationCircleWon Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationCrossWon:
		return "x won"
	case TerminationCircleWon:
		return "o won"
	case TerminationDraw:
		return "draw"
	}
	return "unknown"
}
