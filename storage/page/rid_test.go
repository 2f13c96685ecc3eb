package page

import (
	"testing"

	"hamachidb/types"

	testingpkg "hamachidb/testing"
)

func TestRID(t *testing.T) {
	rid := RID{}
	rid.Set(types.PageID(7), uint32(3))
	testingpkg.Equals(t, types.PageID(7), rid.GetPageId())
	testingpkg.Equals(t, uint32(3), rid.GetSlot())
}
