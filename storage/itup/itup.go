package itup

import (
	"encoding/binary"

	"hamachidb/errors"
	"hamachidb/storage/page"
	"hamachidb/types"
)

// Index tuple format:
//
//	-------------------------------------------------------------------------
//	| heap RID (8) | info (2) | [null bitmap (4)] | [count (8)] | attr data |
//	-------------------------------------------------------------------------
//
// The info word packs three flag bits and the total tuple size:
//
//	15th (high) bit: has nulls (a null bitmap follows the header)
//	14th bit: has var-width attributes
//	13th bit: has an aggregate count region
//	12-0 bit: size of tuple in bytes
//
// The bitmap is present iff the null flag is set, the count region iff the
// count flag is set, and the attribute data region starts at the next
// strict-alignment boundary after whatever regions precede it. The bitmap
// size does not vary with the column count: the header has no room to store
// that count, and a fixed bitmap keeps the data offset computable from the
// flag bits alone.
//
// Each attribute value is placed at the next boundary of its own alignment
// inside the data region; null attributes occupy no bytes at all. The data
// region start is strict-aligned, so offsets relative to it align the same
// as absolute offsets.

const (
	IndexSizeMask = uint16(0x1FFF)
	IndexHasCount = uint16(0x2000)
	IndexVarMask  = uint16(0x4000)
	IndexNullMask = uint16(0x8000)

	// MaxIndexKeys bounds the number of key columns of one index entry.
	MaxIndexKeys = 32
)

const (
	sizeHeapRID          = uint32(8)
	offsetInfo           = sizeHeapRID
	sizeIndexTupleHeader = sizeHeapRID + 2
	sizeNullBitmap       = uint32((MaxIndexKeys + 8 - 1) / 8)
	sizeTupleCount       = uint32(8)
)

const ErrSizeOverflow = errors.Error("index tuple size exceeds the 13 bit size field")
const ErrMalformedTuple = errors.Error("index tuple size or flags are inconsistent with its buffer")

// IndexTuple is one raw encoded index entry. The byte slice is the tuple;
// after encoding, its length and flags never change, and only the count
// region is ever rewritten in place.
type IndexTuple []byte

// DataOffset returns the byte offset of the attribute data region for the
// given info word. Only the flag bits of info matter, so the encoder can
// size its buffer before the tuple exists.
func DataOffset(info uint16) uint32 {
	size := sizeIndexTupleHeader
	if info&IndexNullMask != 0 {
		size += sizeNullBitmap
	}
	size = MaxAlign(size)
	if info&IndexHasCount != 0 {
		size += sizeTupleCount
	}
	return MaxAlign(size)
}

// CountOffset returns the byte offset of the aggregate count region for the
// given info word. Meaningful only when the count flag is set.
func CountOffset(info uint16) uint32 {
	if info&IndexNullMask != 0 {
		return MaxAlign(sizeIndexTupleHeader + sizeNullBitmap)
	}
	return MaxAlign(sizeIndexTupleHeader)
}

func (it IndexTuple) Info() uint16 {
	return binary.LittleEndian.Uint16(it[offsetInfo:])
}

func (it IndexTuple) setInfo(info uint16) {
	binary.LittleEndian.PutUint16(it[offsetInfo:], info)
}

// Size returns the total tuple size declared in the info word.
func (it IndexTuple) Size() uint32 {
	return uint32(it.Info() & IndexSizeMask)
}

func (it IndexTuple) HasNulls() bool {
	return it.Info()&IndexNullMask != 0
}

func (it IndexTuple) HasVarwidths() bool {
	return it.Info()&IndexVarMask != 0
}

func (it IndexTuple) HasCount() bool {
	return it.Info()&IndexHasCount != 0
}

// GetRID reads the heap reference of the source row.
func (it IndexTuple) GetRID() *page.RID {
	rid := new(page.RID)
	pageId := types.PageID(binary.LittleEndian.Uint32(it[0:]))
	slot := binary.LittleEndian.Uint32(it[4:])
	rid.Set(pageId, slot)
	return rid
}

// SetRID points the tuple at its source row. The heap reference is not
// covered by the immutability of the rest of the header, the insert path
// fills it in after encoding.
func (it IndexTuple) SetRID(rid *page.RID) {
	binary.LittleEndian.PutUint32(it[0:], uint32(rid.GetPageId()))
	binary.LittleEndian.PutUint32(it[4:], rid.GetSlot())
}

// AttrIsNull reports whether the 1 based attrNum is marked null in the
// bitmap. Callers must check HasNulls first; a tuple without a bitmap has no
// null attributes.
func (it IndexTuple) AttrIsNull(attrNum uint32) bool {
	bit := attrNum - 1
	return it[sizeIndexTupleHeader+bit/8]&(1<<(bit%8)) != 0
}

func (it IndexTuple) setAttrNull(attrNum uint32) {
	bit := attrNum - 1
	it[sizeIndexTupleHeader+bit/8] |= 1 << (bit % 8)
}

// NullBitmap returns the bitmap bytes, or nil when the tuple has none.
func (it IndexTuple) NullBitmap() []byte {
	if !it.HasNulls() {
		return nil
	}
	return it[sizeIndexTupleHeader : sizeIndexTupleHeader+sizeNullBitmap]
}

// DataBytes returns the attribute data region.
func (it IndexTuple) DataBytes() []byte {
	return it[DataOffset(it.Info()):it.Size()]
}

// Validate checks the declared size and flags against the buffer. A mismatch
// means the tuple bytes were corrupted or truncated upstream.
func (it IndexTuple) Validate() error {
	if uint32(len(it)) < sizeIndexTupleHeader {
		return ErrMalformedTuple
	}
	if it.Size() != uint32(len(it)) {
		return ErrMalformedTuple
	}
	if DataOffset(it.Info()) > it.Size() {
		return ErrMalformedTuple
	}
	return nil
}
