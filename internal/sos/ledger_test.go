package sos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

func TestLedger_RecordNew(t *testing.T) {
	t.Run("Credits unseen ids in input order with their cells", func(t *testing.T) {
		// Given: an empty ledger
		ledger := NewLedger()
		ids := []entity.SequenceID{id(entity.Vertical, 0, 0), id(entity.DiagonalUp, 0, 2)}

		// When: two ids are recorded for p2
		added := ledger.RecordNew(ids, entity.PlayerTwo)

		// Then: both come back in order, with cells and owner
		require.Len(t, added, 2)
		assert.Equal(t, ids[0], added[0].ID)
		assert.Equal(t, ids[1], added[1].ID)
		assert.Equal(t, [3]entity.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, added[1].Cells)
		assert.Equal(t, entity.PlayerTwo, added[0].Player)
		assert.Equal(t, 2, ledger.Len())
	})

	t.Run("Never credits the same id twice", func(t *testing.T) {
		// Given: a ledger that already credited H(0,0) to p1
		ledger := NewLedger()
		ledger.RecordNew([]entity.SequenceID{id(entity.Horizontal, 0, 0)}, entity.PlayerOne)

		// When: the same id shows up again next to a new one
		added := ledger.RecordNew([]entity.SequenceID{id(entity.Horizontal, 0, 0), id(entity.Vertical, 0, 0)}, entity.PlayerTwo)

		// Then: only the new one is credited, and the first keeps its owner
		require.Len(t, added, 1)
		assert.Equal(t, id(entity.Vertical, 0, 0), added[0].ID)
		assert.Equal(t, entity.PlayerOne, ledger.Sequences()[0].Player)
		assert.Empty(t, ledger.RecordNew([]entity.SequenceID{id(entity.Horizontal, 0, 0)}, entity.PlayerOne))
	})
}

func TestLedger_Clone(t *testing.T) {
	ledger := NewLedger()
	ledger.RecordNew([]entity.SequenceID{id(entity.Horizontal, 0, 0)}, entity.PlayerOne)

	clone := ledger.Clone()
	clone.RecordNew([]entity.SequenceID{id(entity.Vertical, 1, 1)}, entity.PlayerTwo)

	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, 2, clone.Len())
	assert.False(t, ledger.Contains(id(entity.Vertical, 1, 1)))
}

func TestLedgerFrom(t *testing.T) {
	seq := entity.Sequence{ID: id(entity.Horizontal, 0, 0), Cells: id(entity.Horizontal, 0, 0).Cells(), Player: entity.PlayerTwo}

	ledger := LedgerFrom([]entity.Sequence{seq, seq})

	assert.Equal(t, 1, ledger.Len())
	assert.True(t, ledger.Contains(seq.ID))
	assert.Equal(t, []entity.Sequence{seq}, ledger.Sequences())
}
