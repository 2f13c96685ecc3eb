package itup

import (
	"encoding/binary"

	"hamachidb/common"
	"hamachidb/storage/table/schema"
	"hamachidb/types"
)

// FormTuple encodes one index entry from one value and one null flag per
// schema column. Null attributes occupy no data bytes; each present value is
// placed at the next boundary of its alignment. The heap reference is left
// zeroed, the caller points it at the source row with SetRID.
//
// Returns ErrSizeOverflow when the encoded tuple would not fit the 13 bit
// size field. The size is never truncated or wrapped.
func FormTuple(schema_ *schema.Schema, values []types.Value, isNull []bool) (IndexTuple, error) {
	return formTuple(schema_, values, isNull, 0, false)
}

// FormTupleWithCount encodes the entry with an aggregate count region
// initialized to count.
func FormTupleWithCount(schema_ *schema.Schema, values []types.Value, isNull []bool, count uint64) (IndexTuple, error) {
	return formTuple(schema_, values, isNull, count, true)
}

func formTuple(schema_ *schema.Schema, values []types.Value, isNull []bool, count uint64, withCount bool) (IndexTuple, error) {
	colCount := schema_.GetColumnCount()
	common.HM_Assert(uint32(len(values)) == colCount && uint32(len(isNull)) == colCount,
		"one value and one null flag per schema column is required")
	common.HM_Assert(colCount <= MaxIndexKeys, "too many key columns for one index entry")

	var info uint16
	for i := uint32(0); i < colCount; i++ {
		if isNull[i] {
			info |= IndexNullMask
			break
		}
	}
	if withCount {
		info |= IndexHasCount
	}

	// data region size walk
	dataSize := uint32(0)
	for i := uint32(0); i < colCount; i++ {
		if isNull[i] {
			continue
		}
		col := schema_.GetColumn(i)
		common.HM_Assert(values[i].ValueType() == col.GetType(), "value type does not match its column type")
		if !col.IsFixedLength() {
			info |= IndexVarMask
		}
		dataSize = AlignLength(col.Align(), dataSize)
		dataSize += values[i].Size()
	}

	dataOffset := DataOffset(info)
	totalSize := dataOffset + dataSize
	if totalSize > uint32(IndexSizeMask) {
		return nil, ErrSizeOverflow
	}

	it := make(IndexTuple, totalSize)
	it.setInfo(info | uint16(totalSize))
	if info&IndexNullMask != 0 {
		for i := uint32(0); i < colCount; i++ {
			if isNull[i] {
				it.setAttrNull(i + 1)
			}
		}
	}
	if withCount {
		binary.LittleEndian.PutUint64(it[CountOffset(info):], count)
	}

	offset := uint32(0)
	for i := uint32(0); i < colCount; i++ {
		if isNull[i] {
			continue
		}
		col := schema_.GetColumn(i)
		offset = AlignLength(col.Align(), offset)
		copy(it[dataOffset+offset:], values[i].Serialize())
		offset += values[i].Size()
	}

	return it, nil
}
