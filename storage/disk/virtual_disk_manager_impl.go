package disk

import (
	"sync"

	"github.com/dsnet/golib/memfile"

	"hamachidb/common"
	"hamachidb/types"
)

// VirtualDiskManagerImpl keeps the page file in memory. It behaves like the
// file backed manager and is meant for tests and ephemeral indexes.
type VirtualDiskManagerImpl struct {
	db          *memfile.File
	fileName    string
	nextPageID  types.PageID
	numWrites   uint64
	size        int64
	dbFileMutex *sync.Mutex
}

// NewVirtualDiskManagerImpl returns an in-memory DiskManager instance
func NewVirtualDiskManagerImpl(dbFilename string) DiskManager {
	file := memfile.New(make([]byte, 0))

	return &VirtualDiskManagerImpl{file, dbFilename, types.PageID(0), 0, int64(0), new(sync.Mutex)}
}

// ReadPage reads a page from the in-memory file
func (d *VirtualDiskManagerImpl) ReadPage(pageID types.PageID, pageData []byte) error {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	offset := int64(pageID) * common.PageSize
	if offset >= d.size {
		return ErrPastEndOfFile
	}

	readBytes, err := d.db.ReadAt(pageData, offset)
	if err != nil {
		return err
	}
	if readBytes != common.PageSize {
		return ErrPartialPageRead
	}

	return nil
}

// WritePage writes a page to the in-memory file
func (d *VirtualDiskManagerImpl) WritePage(pageID types.PageID, pageData []byte) error {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	offset := int64(pageID) * common.PageSize
	d.db.WriteAt(pageData, offset)

	if offset+int64(len(pageData)) > d.size {
		d.size = offset + int64(len(pageData))
	}
	d.numWrites += 1

	return nil
}

// AllocatePage allocates a new page id
func (d *VirtualDiskManagerImpl) AllocatePage() types.PageID {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	ret := d.nextPageID
	d.nextPageID++
	return ret
}

// DeallocatePage is a no-op, matching the file backed manager.
func (d *VirtualDiskManagerImpl) DeallocatePage(pageID types.PageID) {
	if common.EnableDebug {
		common.HmPrintf(common.DEBUG_INFO, "DeallocatePage called. pageID:%v\n", pageID)
	}
}

// GetNumWrites returns the number of page writes so far
func (d *VirtualDiskManagerImpl) GetNumWrites() uint64 {
	return d.numWrites
}

// ShutDown releases nothing, the data lives on the Go heap
func (d *VirtualDiskManagerImpl) ShutDown() {
}

// Size returns the size of the in-memory file
func (d *VirtualDiskManagerImpl) Size() int64 {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	return d.size
}
