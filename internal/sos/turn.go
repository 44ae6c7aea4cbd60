package sos

import "github.com/rocketscienceinc/sos-backend/internal/entity"

// TurnTracker holds whose turn it is. Rules decide when to call Advance.
type TurnTracker struct {
	current entity.Player
}

func NewTurnTracker(first entity.Player) *TurnTracker {
	return &TurnTracker{current: first}
}

func (that *TurnTracker) Current() entity.Player {
	return that.current
}

func (that *TurnTracker) Advance() {
	that.current = that.current.Opponent()
}
