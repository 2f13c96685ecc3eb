package disk

import (
	"log"
	"os"
	"sync"

	"hamachidb/common"
	"hamachidb/errors"
	"hamachidb/types"
)

const ErrPastEndOfFile = errors.Error("read past end of the db file")
const ErrPartialPageRead = errors.Error("read a page with a size smaller than the page size")

// DiskManagerImpl is the disk implementation of DiskManager
type DiskManagerImpl struct {
	db          *os.File
	fileName    string
	nextPageID  types.PageID
	numWrites   uint64
	size        int64
	dbFileMutex *sync.Mutex
}

// NewDiskManagerImpl returns a DiskManager instance backed by a db file
func NewDiskManagerImpl(dbFilename string) DiskManager {
	file, err := os.OpenFile(dbFilename, os.O_RDWR|os.O_CREATE, 0666)
	if err != nil {
		log.Fatalln("can't open db file")
		return nil
	}

	fileInfo, err := file.Stat()
	if err != nil {
		log.Fatalln("file info error")
		return nil
	}

	fileSize := fileInfo.Size()
	nextPageID := types.PageID(fileSize / common.PageSize)

	return &DiskManagerImpl{file, dbFilename, nextPageID, 0, fileSize, new(sync.Mutex)}
}

// ReadPage reads a page from the database file
func (d *DiskManagerImpl) ReadPage(pageID types.PageID, pageData []byte) error {
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

// WritePage writes a page to the database file
func (d *DiskManagerImpl) WritePage(pageID types.PageID, pageData []byte) error {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	offset := int64(pageID) * common.PageSize
	d.db.WriteAt(pageData, offset)
	d.db.Sync()

	if offset+int64(len(pageData)) > d.size {
		d.size = offset + int64(len(pageData))
	}
	d.numWrites += 1

	return nil
}

// AllocatePage allocates a new page id
func (d *DiskManagerImpl) AllocatePage() types.PageID {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	ret := d.nextPageID
	d.nextPageID++
	return ret
}

// DeallocatePage is a no-op. Reclaiming file space needs a free space map,
// which lives above this layer.
func (d *DiskManagerImpl) DeallocatePage(pageID types.PageID) {
	if common.EnableDebug {
		common.HmPrintf(common.DEBUG_INFO, "DeallocatePage called. pageID:%v\n", pageID)
	}
}

// GetNumWrites returns the number of page writes so far
func (d *DiskManagerImpl) GetNumWrites() uint64 {
	return d.numWrites
}

// ShutDown closes the database file
func (d *DiskManagerImpl) ShutDown() {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	d.db.Close()
}

// Size returns the size of the database file
func (d *DiskManagerImpl) Size() int64 {
	d.dbFileMutex.Lock()
	defer d.dbFileMutex.Unlock()

	return d.size
}
