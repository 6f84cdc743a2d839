package board

import "draftboard/internal/model"

// Removal is one entry of the undo log.
type Removal struct {
	Seq    int64
	Index  int
	Record model.PlayerRecord
}

// Board holds the loaded players split into an available partition and a removal log.
// It is not safe for concurrent use; callers serialise access.
type Board struct {
	records []model.PlayerRecord
	removed []bool
	log     []Removal
	seq     int64
}

// Load builds a Board with every record available. Record indices are reassigned to
// their position in records.
func Load(records []model.PlayerRecord) *Board {
	rs := make([]model.PlayerRecord, len(records))
	copy(rs, records)
	for i := range rs {
		rs[i].Index = i
	}
	return &Board{
		records: rs,
		removed: make([]bool, len(rs)),
	}
}

// Len returns the number of loaded records.
func (b *Board) Len() int { return len(b.records) }

// Available returns the available records in original load order.
func (b *Board) Available() []model.PlayerRecord {
	out := make([]model.PlayerRecord, 0, len(b.records)-len(b.log))
	for i, r := range b.records {
		if !b.removed[i] {
			out = append(out, r)
		}
	}
	return out
}

// Export returns the same view as Available, for writing out.
func (b *Board) Export() []model.PlayerRecord { return b.Available() }

// IsAvailable reports whether index is currently in the available partition.
func (b *Board) IsAvailable(index int) bool {
	return index >= 0 && index < len(b.records) && !b.removed[index]
}

// Record returns the loaded record at index regardless of partition.
func (b *Board) Record(index int) (model.PlayerRecord, bool) {
	if index < 0 || index >= len(b.records) {
		return model.PlayerRecord{}, false
	}
	return b.records[index], true
}

// RemoveByIndex moves the record at index to the removal log.
func (b *Board) RemoveByIndex(index int) (model.PlayerRecord, error) {
	if !b.IsAvailable(index) {
		return model.PlayerRecord{}, &NotFoundError{Index: index}
	}
	b.seq++
	rec := b.records[index]
	b.removed[index] = true
	b.log = append(b.log, Removal{Seq: b.seq, Index: index, Record: rec})
	return rec, nil
}

// RestoreLast undoes up to n of the most recent removals, newest first.
// An empty log yields an empty result.
func (b *Board) RestoreLast(n int) []model.PlayerRecord {
	var out []model.PlayerRecord
	for ; n > 0 && len(b.log) > 0; n-- {
		last := b.log[len(b.log)-1]
		b.log = b.log[:len(b.log)-1]
		b.removed[last.Index] = false
		out = append(out, last.Record)
	}
	return out
}

// History returns the removal log, oldest first.
func (b *Board) History() []Removal {
	out := make([]Removal, len(b.log))
	copy(out, b.log)
	return out
}
