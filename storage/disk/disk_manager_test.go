package disk

import (
	"testing"

	"hamachidb/common"
	"hamachidb/types"

	testingpkg "hamachidb/testing"
)

func TestReadWritePage(t *testing.T) {
	dm := NewDiskManagerTest()
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	buffer := make([]byte, common.PageSize)

	copy(data, "A test string.")

	testingpkg.Equals(t, ErrPastEndOfFile, dm.ReadPage(0, buffer))
	testingpkg.Ok(t, dm.WritePage(0, data))
	testingpkg.Ok(t, dm.ReadPage(0, buffer))
	testingpkg.Equals(t, data, buffer)

	memset(buffer, 0)
	copy(data, "Another test string.")

	testingpkg.Ok(t, dm.WritePage(5, data))
	testingpkg.Ok(t, dm.ReadPage(5, buffer))
	testingpkg.Equals(t, data, buffer)
}

func TestVirtualReadWritePage(t *testing.T) {
	dm := NewVirtualDiskManagerImpl("test.db")
	defer dm.ShutDown()

	data := make([]byte, common.PageSize)
	buffer := make([]byte, common.PageSize)

	copy(data, "A test string.")

	pageId := dm.AllocatePage()
	testingpkg.Equals(t, types.PageID(0), pageId)
	testingpkg.Equals(t, ErrPastEndOfFile, dm.ReadPage(pageId, buffer))
	testingpkg.Ok(t, dm.WritePage(pageId, data))
	testingpkg.Ok(t, dm.ReadPage(pageId, buffer))
	testingpkg.Equals(t, data, buffer)

	testingpkg.Equals(t, types.PageID(1), dm.AllocatePage())
}

func memset(buffer []byte, value byte) {
	for i := range buffer {
		buffer[i] = value
	}
}
