package machine

import "fmt"

// Direction is a head movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Stay
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Stay:
		return "STAY"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
