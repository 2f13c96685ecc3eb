package itup

import (
	"encoding/binary"

	"hamachidb/common"
	"hamachidb/storage/table/column"
	"hamachidb/storage/table/schema"
	"hamachidb/types"
)

// GetAttr extracts one attribute of an encoded tuple. attrNum is 1 based.
// The second result reports nullness; the value is undefined when it is
// true.
//
// For a tuple without nulls the column's cached offset, once computed by any
// walker, makes this a direct read. With nulls present every offset is data
// dependent, so the walk always starts from the first attribute and the
// shared cache is neither trusted nor written.
func GetAttr(it IndexTuple, attrNum uint32, schema_ *schema.Schema) (types.Value, bool, error) {
	common.HM_Assert(attrNum >= 1 && attrNum <= schema_.GetColumnCount(), "attribute number out of range")
	if err := it.Validate(); err != nil {
		return types.Value{}, false, err
	}

	if !it.HasNulls() {
		col := schema_.GetColumn(attrNum - 1)
		if cached := col.CachedOffset(); cached >= 0 {
			value, err := readAttr(it, col, DataOffset(it.Info())+uint32(cached))
			return value, false, err
		}
		value, err := nocacheGetAttr(it, attrNum, schema_)
		return value, false, err
	}

	if it.AttrIsNull(attrNum) {
		return types.NewNull(schema_.GetColumn(attrNum - 1).GetType()), true, nil
	}
	value, err := nocacheGetAttr(it, attrNum, schema_)
	return value, false, err
}

// DeformTuple decodes every attribute in one forward pass, carrying the
// running offset across attributes instead of recomputing it per call.
func DeformTuple(it IndexTuple, schema_ *schema.Schema) ([]types.Value, []bool, error) {
	if err := it.Validate(); err != nil {
		return nil, nil, err
	}

	colCount := schema_.GetColumnCount()
	dataOffset := DataOffset(it.Info())
	hasNulls := it.HasNulls()
	cacheable := !hasNulls
	fixedPrefix := true

	values := make([]types.Value, colCount)
	isNull := make([]bool, colCount)
	offset := uint32(0)
	for i := uint32(1); i <= colCount; i++ {
		col := schema_.GetColumn(i - 1)
		if hasNulls && it.AttrIsNull(i) {
			values[i-1] = types.NewNull(col.GetType())
			isNull[i-1] = true
			continue
		}
		offset = AlignLength(col.Align(), offset)
		if cacheable && fixedPrefix {
			col.SetCachedOffset(int32(offset))
		}
		value, err := readAttr(it, col, dataOffset+offset)
		if err != nil {
			return nil, nil, err
		}
		values[i-1] = value
		offset += value.Size()
		if !col.IsFixedLength() {
			fixedPrefix = false
		}
	}

	return values, isNull, nil
}

// nocacheGetAttr walks the data region from the first attribute up to
// attrNum. When the tuple has no nulls, every offset it passes is a pure
// function of the preceding widths, so those offsets are published to the
// shared per-column cache up to the first variable width column. With nulls
// the cache is left alone: a null-shifted offset stored there would be read
// by decoders of unrelated tuples of the same schema.
func nocacheGetAttr(it IndexTuple, attrNum uint32, schema_ *schema.Schema) (types.Value, error) {
	dataOffset := DataOffset(it.Info())
	hasNulls := it.HasNulls()
	cacheable := !hasNulls
	fixedPrefix := true

	offset := uint32(0)
	for i := uint32(1); i <= attrNum; i++ {
		if hasNulls && it.AttrIsNull(i) {
			// null attributes occupy no bytes
			continue
		}
		col := schema_.GetColumn(i - 1)
		offset = AlignLength(col.Align(), offset)
		if cacheable && fixedPrefix {
			col.SetCachedOffset(int32(offset))
		}
		if i == attrNum {
			return readAttr(it, col, dataOffset+offset)
		}
		width, err := attrWidth(it, col, dataOffset+offset)
		if err != nil {
			return types.Value{}, err
		}
		offset += width
		if !col.IsFixedLength() {
			fixedPrefix = false
		}
	}

	// GetAttr resolves null targets from the bitmap before walking
	panic("nocacheGetAttr reached a null target attribute")
}

// attrWidth returns the serialized width of the value of col stored at the
// absolute offset, bounds checked against the declared tuple size.
func attrWidth(it IndexTuple, col *column.Column, offset uint32) (uint32, error) {
	if offset+col.FixedLength() > it.Size() {
		return 0, ErrMalformedTuple
	}
	if col.IsFixedLength() {
		return col.FixedLength(), nil
	}
	payload := uint32(binary.LittleEndian.Uint16(it[offset:]))
	if offset+col.FixedLength()+payload > it.Size() {
		return 0, ErrMalformedTuple
	}
	return col.FixedLength() + payload, nil
}

func readAttr(it IndexTuple, col *column.Column, offset uint32) (types.Value, error) {
	if _, err := attrWidth(it, col, offset); err != nil {
		return types.Value{}, err
	}
	return *types.NewValueFromBytes(it[offset:], col.GetType()), nil
}
