package page

import (
	"hamachidb/common"
	"hamachidb/types"
)

// Page represents one fixed size page of index data
type Page struct {
	id       types.PageID
	pinCount int
	isDirty  bool
	data     *[common.PageSize]byte
	rwlatch  common.ReaderWriterLatch
}

// WLatch takes the page latch for writing
func (p *Page) WLatch() {
	p.rwlatch.WLock()
}

// WUnlatch releases the write latch
func (p *Page) WUnlatch() {
	p.rwlatch.WUnlock()
}

// RLatch takes the page latch for reading
func (p *Page) RLatch() {
	p.rwlatch.RLock()
}

// RUnlatch releases the read latch
func (p *Page) RUnlatch() {
	p.rwlatch.RUnlock()
}

// IncPinCount increments pin count
func (p *Page) IncPinCount() {
	p.pinCount++
}

// DecPinCount decrements pin count
func (p *Page) DecPinCount() {
	if p.pinCount > 0 {
		p.pinCount--
	}
}

// PinCount returns the pin count
func (p *Page) PinCount() int {
	return p.pinCount
}

// ID returns the page id
func (p *Page) ID() types.PageID {
	return p.id
}

func (p *Page) Data() *[common.PageSize]byte {
	return p.data
}

func (p *Page) SetIsDirty(isDirty bool) {
	p.isDirty = isDirty
}

func (p *Page) IsDirty() bool {
	return p.isDirty
}

func New(id types.PageID, pinCount int, isDirty bool, data *[common.PageSize]byte) *Page {
	return &Page{id, pinCount, isDirty, data, common.NewRWLatch()}
}

func NewEmpty(id types.PageID) *Page {
	return &Page{id, 1, false, &[common.PageSize]byte{}, common.NewRWLatch()}
}
