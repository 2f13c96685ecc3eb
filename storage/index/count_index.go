package index

import (
	"bytes"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	pair "github.com/notEpsilon/go-pair"
	"github.com/sasha-s/go-deadlock"

	"hamachidb/container/hash"
	"hamachidb/storage/itup"
	"hamachidb/storage/page"
	"hamachidb/types"
)

// CountIndex keeps one counted index tuple per distinct key: inserting a
// duplicate key bumps the embedded aggregate count instead of adding an
// entry. COUNT style queries over the indexed key are then answered from
// the counts alone, without visiting heap rows.
//
// Entries are held sorted by key bytes. The stored heap reference is the one
// of the first row inserted for the key.
type CountIndex struct {
	metadata  *IndexMetadata
	rwlatch   deadlock.RWMutex
	entries   []itup.IndexTuple
	keyHashes mapset.Set[uint32]
}

func NewCountIndex(metadata *IndexMetadata) *CountIndex {
	ret := new(CountIndex)
	ret.metadata = metadata
	ret.entries = make([]itup.IndexTuple, 0)
	ret.keyHashes = mapset.NewSet[uint32]()
	return ret
}

func (ci *CountIndex) GetMetadata() *IndexMetadata {
	return ci.metadata
}

// compareKeys orders entries by their attribute bytes, tie broken by the
// null bitmap so a null key and a zero valued key stay distinct. Counts are
// excluded: two entries for the same key compare equal whatever their
// counts.
func compareKeys(a itup.IndexTuple, b itup.IndexTuple) int {
	if c := bytes.Compare(a.DataBytes(), b.DataBytes()); c != 0 {
		return c
	}
	return bytes.Compare(a.NullBitmap(), b.NullBitmap())
}

// InsertEntry records one source row for the given key values.
func (ci *CountIndex) InsertEntry(values []types.Value, isNull []bool, rid *page.RID) error {
	entry, err := itup.FormTupleWithCount(ci.metadata.GetKeySchema(), values, isNull, 1)
	if err != nil {
		return err
	}
	entry.SetRID(rid)
	keyHash := hash.GenIndexKeyHash(entry.NullBitmap(), entry.DataBytes())

	ci.rwlatch.Lock()
	defer ci.rwlatch.Unlock()

	pos := sort.Search(len(ci.entries), func(i int) bool {
		return compareKeys(ci.entries[i], entry) >= 0
	})
	// an unseen key hash cannot match an existing entry, skip the compare
	if pos < len(ci.entries) && ci.keyHashes.Contains(keyHash) &&
		compareKeys(ci.entries[pos], entry) == 0 {
		ci.entries[pos].AddCount(1)
		return nil
	}

	ci.entries = append(ci.entries, nil)
	copy(ci.entries[pos+1:], ci.entries[pos:])
	ci.entries[pos] = entry
	ci.keyHashes.Add(keyHash)
	return nil
}

// GetCount returns how many rows were recorded for the key, 0 when the key
// was never inserted.
func (ci *CountIndex) GetCount(values []types.Value, isNull []bool) (uint64, error) {
	probe, err := itup.FormTupleWithCount(ci.metadata.GetKeySchema(), values, isNull, 0)
	if err != nil {
		return 0, err
	}

	ci.rwlatch.RLock()
	defer ci.rwlatch.RUnlock()

	pos := sort.Search(len(ci.entries), func(i int) bool {
		return compareKeys(ci.entries[i], probe) >= 0
	})
	if pos < len(ci.entries) && compareKeys(ci.entries[pos], probe) == 0 {
		return ci.entries[pos].GetCount(), nil
	}
	return 0, nil
}

// ScanCounts returns every (key values, count) group in key byte order.
func (ci *CountIndex) ScanCounts() ([]pair.Pair[[]types.Value, uint64], error) {
	ci.rwlatch.RLock()
	defer ci.rwlatch.RUnlock()

	ret := make([]pair.Pair[[]types.Value, uint64], 0, len(ci.entries))
	for _, entry := range ci.entries {
		values, _, err := itup.DeformTuple(entry, ci.metadata.GetKeySchema())
		if err != nil {
			return nil, err
		}
		ret = append(ret, pair.Pair[[]types.Value, uint64]{First: values, Second: entry.GetCount()})
	}
	return ret, nil
}

// ApproxDistinctKeys returns the number of distinct key hashes observed.
// Hash collisions can undercount, treat the result as an estimate.
func (ci *CountIndex) ApproxDistinctKeys() int {
	ci.rwlatch.RLock()
	defer ci.rwlatch.RUnlock()

	return ci.keyHashes.Cardinality()
}
