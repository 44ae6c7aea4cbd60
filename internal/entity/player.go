package entity

import (
	"fmt"

	"github.com/rocketscienceinc/sos-backend/internal/apperror"
)

type Player string

const (
	PlayerOne Player = "p1"
	PlayerTwo Player = "p2"
)

func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// SeatKind tells who supplies the moves of a seat. It never changes the rules.
type SeatKind string

const (
	HumanSeat    SeatKind = "human"
	ComputerSeat SeatKind = "computer"
)

func (that SeatKind) IsComputer() bool {
	return that == ComputerSeat
}

func ParseSeatKind(s string) (SeatKind, error) {
	switch kind := SeatKind(s); kind {
	case HumanSeat, ComputerSeat:
		return kind, nil
	case "":
		return HumanSeat, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidSeat, s)
	}
}

type Seats struct {
	P1 SeatKind `json:"p1"`
	P2 SeatKind `json:"p2"`
}

func HumanSeats() Seats {
	return Seats{P1: HumanSeat, P2: HumanSeat}
}

func (that Seats) Of(player Player) SeatKind {
	if player == PlayerOne {
		return that.P1
	}
	return that.P2
}

func (that Seats) Validate() error {
	for _, kind := range []SeatKind{that.P1, that.P2} {
		if kind != HumanSeat && kind != ComputerSeat {
			return fmt.Errorf("%w: %q", apperror.ErrInvalidSeat, kind)
		}
	}

	return nil
}
