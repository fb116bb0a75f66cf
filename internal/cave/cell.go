package cave

type CellState uint8

const (
	Air CellState = iota
	Rock
	Sand
	Inlet
	/*
	 * Stuck marks where a grain gave up falling because nothing lies
	 * beneath it. Only written when the cave has no floor. It is not
	 * solid: a later grain heading into it is lost as well.
	 */
	Stuck
)

// Passable reports whether a falling grain may move into the cell.
func (s CellState) Passable() bool {
	return s == Air || s == Inlet
}

func (s CellState) String() string {
	switch s {
	case Air:
		return "."
	case Rock:
		return "#"
	case Sand:
		return "o"
	case Inlet:
		return "+"
	case Stuck:
		return "~"
	default:
		return "!"
	}
}
