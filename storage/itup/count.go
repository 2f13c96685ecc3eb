package itup

import (
	"encoding/binary"

	"hamachidb/common"
)

// The count accessors are the only operations that rewrite tuple bytes after
// encoding. They touch the 8 count bytes and nothing else: never the size,
// never the flags, never the data region.

// GetCount reads the embedded aggregate count. The tuple must carry a count
// region; calling this on one that does not is a caller bug, not bad data.
func (it IndexTuple) GetCount() uint64 {
	common.HM_Assert(it.HasCount(), "aggregate count access on a tuple without a count region")
	return binary.LittleEndian.Uint64(it[CountOffset(it.Info()):])
}

// SetCount stores the aggregate count.
func (it IndexTuple) SetCount(count uint64) {
	common.HM_Assert(it.HasCount(), "aggregate count access on a tuple without a count region")
	binary.LittleEndian.PutUint64(it[CountOffset(it.Info()):], count)
}

// AddCount bumps the aggregate count by delta, wrapping modulo 2^64.
func (it IndexTuple) AddCount(delta uint64) {
	common.HM_Assert(it.HasCount(), "aggregate count access on a tuple without a count region")
	offset := CountOffset(it.Info())
	binary.LittleEndian.PutUint64(it[offset:], binary.LittleEndian.Uint64(it[offset:])+delta)
}
