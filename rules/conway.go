package rules

import "fmt"

// Transition names the branch of the B3/S23 rule a cell takes
type Transition uint8

const (
	StaysDead Transition = iota
	Birth
	Survival
	Loneliness
	Overcrowding
)

var transitionNames = [...]string{
	StaysDead:    "stays dead",
	Birth:        "birth",
	Survival:     "survival",
	Loneliness:   "loneliness",
	Overcrowding: "overcrowding",
}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return fmt.Sprintf("Transition(%d)", uint8(t))
}

// Alive reports whether the cell is alive after the transition
func (t Transition) Alive() bool {
	return t == Birth || t == Survival
}

/*
Apply classifies the next state of a cell from its live neighbor count and
current state.

	dead  + 3     -> Birth
	alive + 0..1  -> Loneliness
	alive + 4..8  -> Overcrowding
	alive + 2..3  -> Survival
	dead  + other -> StaysDead
*/
func Apply(neighbors int, alive bool) Transition {
	if neighbors < 0 || neighbors > 8 {
		panic(fmt.Sprintf("rules: neighbor count %d outside [0,8]", neighbors))
	}
	switch {
	case !alive && neighbors == 3:
		return Birth
	case !alive:
		return StaysDead
	case neighbors <= 1:
		return Loneliness
	case neighbors > 3:
		return Overcrowding
	default:
		return Survival
	}
}
