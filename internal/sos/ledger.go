package sos

import "github.com/rocketscienceinc/sos-backend/internal/entity"

// Ledger remembers which sequences were already credited so none counts twice.
type Ledger struct {
	credited map[entity.SequenceID]struct{}
	order    []entity.Sequence
}

func NewLedger() *Ledger {
	return &Ledger{credited: make(map[entity.SequenceID]struct{})}
}

// LedgerFrom restores a ledger from previously credited sequences.
func LedgerFrom(sequences []entity.Sequence) *Ledger {
	ledger := NewLedger()
	for _, seq := range sequences {
		if _, ok := ledger.credited[seq.ID]; ok {
			continue
		}
		ledger.credited[seq.ID] = struct{}{}
		ledger.order = append(ledger.order, seq)
	}

	return ledger
}

// RecordNew credits the ids not seen before to player and returns them in input order.
func (that *Ledger) RecordNew(ids []entity.SequenceID, player entity.Player) []entity.Sequence {
	var added []entity.Sequence

	for _, id := range ids {
		if that.Contains(id) {
			continue
		}

		seq := entity.Sequence{ID: id, Cells: id.Cells(), Player: player}
		that.credited[id] = struct{}{}
		that.order = append(that.order, seq)
		added = append(added, seq)
	}

	return added
}

func (that *Ledger) Contains(id entity.SequenceID) bool {
	_, ok := that.credited[id]
	return ok
}

func (that *Ledger) Len() int {
	return len(that.order)
}

// Sequences returns the credited sequences in the order they were credited.
func (that *Ledger) Sequences() []entity.Sequence {
	sequences := make([]entity.Sequence, len(that.order))
	copy(sequences, that.order)

	return sequences
}

func (that *Ledger) Clone() *Ledger {
	return LedgerFrom(that.order)
}
