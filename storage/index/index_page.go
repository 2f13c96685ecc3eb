package index

import (
	"encoding/binary"
	"unsafe"

	"hamachidb/common"
	"hamachidb/errors"
	"hamachidb/storage/itup"
	"hamachidb/storage/page"
	"hamachidb/types"
)

const ErrNotEnoughSpace = errors.Error("there is not enough space on the page")
const ErrNoSuchSlot = errors.Error("no tuple at the requested slot")

const offsetPageId = uint32(0)
const offsetPrevPageId = uint32(4)
const offsetNextPageId = uint32(8)
const offsetFreeSpacePointer = uint32(12)
const offsetSlotCount = uint32(16)
const offsetSlotArray = uint32(common.SizeOfPageHeader)

// IndexPage lays index tuples out on one fixed size page:
//
//	---------------------------------------------------------
//	| HEADER | SLOTS ... | ... FREE SPACE ... | ... TUPLES |
//	---------------------------------------------------------
//	                                          ^
//	                                          free space pointer
//
// Header format (size in bytes):
//
//	-----------------------------------------------------------------------------
//	| PageId (4) | PrevPageId (4) | NextPageId (4) | FreeSpacePtr (4) |
//	| SlotCount (4) | reserved (4) |
//	-----------------------------------------------------------------------------
//
// Each slot entry is a (tuple offset, tuple size) uint32 pair. Slots grow up
// from the header, tuple bytes grow down from the end of the page.
type IndexPage struct {
	page.Page
}

// CastPageAsIndexPage casts the abstract Page struct into IndexPage
func CastPageAsIndexPage(p *page.Page) *IndexPage {
	if p == nil {
		return nil
	}

	return (*IndexPage)(unsafe.Pointer(p))
}

// Init formats the page as an empty index page
func (ip *IndexPage) Init(id types.PageID, prevPageId types.PageID) {
	ip.WLatch()
	defer ip.WUnlatch()

	ip.setUint32(offsetPageId, uint32(id))
	ip.setUint32(offsetPrevPageId, uint32(prevPageId))
	nextPageId := types.InvalidPageID
	ip.setUint32(offsetNextPageId, uint32(nextPageId))
	ip.setUint32(offsetFreeSpacePointer, common.PageSize)
	ip.setUint32(offsetSlotCount, 0)
}

func (ip *IndexPage) GetPageId() types.PageID {
	return types.PageID(ip.getUint32(offsetPageId))
}

func (ip *IndexPage) GetPrevPageId() types.PageID {
	return types.PageID(ip.getUint32(offsetPrevPageId))
}

func (ip *IndexPage) GetNextPageId() types.PageID {
	return types.PageID(ip.getUint32(offsetNextPageId))
}

func (ip *IndexPage) SetNextPageId(id types.PageID) {
	ip.WLatch()
	defer ip.WUnlatch()
	ip.setUint32(offsetNextPageId, uint32(id))
	ip.SetIsDirty(true)
}

// GetTupleCount returns the number of tuples stored on the page
func (ip *IndexPage) GetTupleCount() uint32 {
	return ip.getUint32(offsetSlotCount)
}

func (ip *IndexPage) getFreeSpacePointer() uint32 {
	return ip.getUint32(offsetFreeSpacePointer)
}

func (ip *IndexPage) getFreeSpaceRemaining() uint32 {
	return ip.getFreeSpacePointer() - offsetSlotArray - common.SizeOfSlotEntry*ip.GetTupleCount()
}

// InsertTuple appends an encoded index tuple to the page and returns its
// slot as a RID on this page.
func (ip *IndexPage) InsertTuple(it itup.IndexTuple) (*page.RID, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}

	ip.WLatch()
	defer ip.WUnlatch()

	size := it.Size()
	if ip.getFreeSpaceRemaining() < size+common.SizeOfSlotEntry {
		return nil, ErrNotEnoughSpace
	}

	offset := ip.getFreeSpacePointer() - size
	copy(ip.Data()[offset:], it)
	ip.setUint32(offsetFreeSpacePointer, offset)

	slot := ip.GetTupleCount()
	slotEntry := offsetSlotArray + common.SizeOfSlotEntry*slot
	ip.setUint32(slotEntry, offset)
	ip.setUint32(slotEntry+4, size)
	ip.setUint32(offsetSlotCount, slot+1)
	ip.SetIsDirty(true)

	rid := new(page.RID)
	rid.Set(ip.GetPageId(), slot)
	return rid, nil
}

// GetTuple reads the tuple at the given slot. The returned tuple owns its
// bytes, later page writes do not reach into it.
func (ip *IndexPage) GetTuple(slot uint32) (itup.IndexTuple, error) {
	ip.RLatch()
	defer ip.RUnlatch()

	if slot >= ip.GetTupleCount() {
		return nil, ErrNoSuchSlot
	}

	slotEntry := offsetSlotArray + common.SizeOfSlotEntry*slot
	offset := ip.getUint32(slotEntry)
	size := ip.getUint32(slotEntry + 4)

	it := make(itup.IndexTuple, size)
	copy(it, ip.Data()[offset:offset+size])
	return it, nil
}

// GetAllTuples reads every tuple on the page in slot order. The scratch
// slice is sized by the page-geometry bound so growth never reallocates.
func (ip *IndexPage) GetAllTuples() ([]itup.IndexTuple, error) {
	ret := make([]itup.IndexTuple, 0,
		itup.MaxIndexTuplesPerPage(common.PageSize, common.SizeOfPageHeader, common.SizeOfSlotEntry))
	for slot := uint32(0); slot < ip.GetTupleCount(); slot++ {
		it, err := ip.GetTuple(slot)
		if err != nil {
			return nil, err
		}
		ret = append(ret, it)
	}
	return ret, nil
}

func (ip *IndexPage) getUint32(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(ip.Data()[offset:])
}

func (ip *IndexPage) setUint32(offset uint32, value uint32) {
	binary.LittleEndian.PutUint32(ip.Data()[offset:], value)
}
