package column

import (
	"sync/atomic"

	"hamachidb/types"
)

// Column describes one indexed attribute: its type, serialized width and the
// shared cached offset used by the no-nulls decode fast path.
type Column struct {
	columnName     string
	columnType     types.TypeID
	fixedLength    uint32 // serialized width of the value, or of the length prefix for a variable length column
	variableLength uint32 // 0 for a fixed length column, max payload length otherwise
	hasIndex       bool   // whether the column has index data
	cachedOffset   int32  // byte offset from the data region start, -1 while unknown
}

func NewColumn(name string, columnType types.TypeID, hasIndex bool) *Column {
	if columnType != types.Varchar {
		return &Column{name, columnType, columnType.Size(), 0, hasIndex, -1}
	}

	return &Column{name, types.Varchar, types.Varchar.Size(), 255, hasIndex, -1}
}

// IsFixedLength reports whether values of this column occupy a data
// independent number of bytes.
func (c *Column) IsFixedLength() bool {
	return !c.columnType.IsVariable()
}

func (c *Column) GetType() types.TypeID {
	return c.columnType
}

func (c *Column) FixedLength() uint32 {
	return c.fixedLength
}

func (c *Column) VariableLength() uint32 {
	return c.variableLength
}

// Align returns the alignment requirement of this column's values within
// the tuple data region.
func (c *Column) Align() uint32 {
	return c.columnType.Align()
}

func (c *Column) GetColumnName() string {
	return c.columnName
}

func (c *Column) HasIndex() bool {
	return c.hasIndex
}

// CachedOffset returns the memoized no-nulls offset of this column's value,
// or -1 while no decoder has computed it yet.
//
// The cache is shared by every goroutine decoding tuples of the same schema.
// Reads and writes go through atomics: concurrent walkers may race to
// publish the offset, but in the no-nulls regime the offset is a pure
// function of the preceding fixed widths, so every writer stores the same
// value and a lost write only costs a recomputation.
func (c *Column) CachedOffset() int32 {
	return atomic.LoadInt32(&c.cachedOffset)
}

func (c *Column) SetCachedOffset(offset int32) {
	atomic.StoreInt32(&c.cachedOffset, offset)
}
