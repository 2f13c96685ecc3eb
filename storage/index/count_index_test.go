package index

import (
	"sync"
	"testing"

	"hamachidb/storage/page"
	"hamachidb/storage/table/column"
	"hamachidb/storage/table/schema"
	"hamachidb/types"

	testingpkg "hamachidb/testing"
	"hamachidb/testing/testing_util"
)

func deptCountIndex() *CountIndex {
	tableSchema := schema.NewSchema([]*column.Column{
		column.NewColumn("dept", types.Varchar, true),
		column.NewColumn("salary", types.Integer, false),
	})
	metadata := NewIndexMetadata("dept_count_idx", "employees", tableSchema, []uint32{0})
	return NewCountIndex(metadata)
}

func insertDept(t *testing.T, ci *CountIndex, dept string, null bool, rid *page.RID) {
	var key types.Value
	if null {
		key = types.NewNull(types.Varchar)
	} else {
		key = testing_util.GetValue(dept)
	}
	testingpkg.Ok(t, ci.InsertEntry([]types.Value{key}, []bool{null}, rid))
}

func TestCountIndexAggregates(t *testing.T) {
	ci := deptCountIndex()
	rid := new(page.RID)
	rid.Set(types.PageID(1), 0)

	insertDept(t, ci, "eng", false, rid)
	insertDept(t, ci, "sales", false, rid)
	insertDept(t, ci, "eng", false, rid)
	insertDept(t, ci, "", true, rid)
	insertDept(t, ci, "eng", false, rid)
	insertDept(t, ci, "sales", false, rid)

	count, err := ci.GetCount([]types.Value{testing_util.GetValue("eng")}, []bool{false})
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint64(3), count)

	count, err = ci.GetCount([]types.Value{testing_util.GetValue("sales")}, []bool{false})
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint64(2), count)

	count, err = ci.GetCount([]types.Value{types.NewNull(types.Varchar)}, []bool{true})
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint64(1), count)

	count, err = ci.GetCount([]types.Value{testing_util.GetValue("hr")}, []bool{false})
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint64(0), count)

	testingpkg.Equals(t, 3, ci.ApproxDistinctKeys())
}

func TestCountIndexScanCounts(t *testing.T) {
	ci := deptCountIndex()
	rid := new(page.RID)
	rid.Set(types.PageID(1), 0)

	insertDept(t, ci, "sales", false, rid)
	insertDept(t, ci, "eng", false, rid)
	insertDept(t, ci, "eng", false, rid)
	insertDept(t, ci, "", true, rid)

	groups, err := ci.ScanCounts()
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, 3, len(groups))

	// key byte order: the null key has no data bytes and sorts first
	testingpkg.Assert(t, groups[0].First[0].IsNull(), "null group must sort first")
	testingpkg.Equals(t, uint64(1), groups[0].Second)
	testingpkg.Equals(t, "eng", groups[1].First[0].ToVarchar())
	testingpkg.Equals(t, uint64(2), groups[1].Second)
	testingpkg.Equals(t, "sales", groups[2].First[0].ToVarchar())
	testingpkg.Equals(t, uint64(1), groups[2].Second)
}

func TestCountIndexConcurrentInserts(t *testing.T) {
	ci := deptCountIndex()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			rid := new(page.RID)
			for n := 0; n < 50; n++ {
				rid.Set(types.PageID(g), uint32(n))
				insertDeptValue(ci, "eng", rid)
			}
		}(g)
	}
	wg.Wait()

	count, err := ci.GetCount([]types.Value{testing_util.GetValue("eng")}, []bool{false})
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint64(200), count)
	testingpkg.Equals(t, 1, ci.ApproxDistinctKeys())
}

func insertDeptValue(ci *CountIndex, dept string, rid *page.RID) {
	err := ci.InsertEntry([]types.Value{testing_util.GetValue(dept)}, []bool{false}, rid)
	if err != nil {
		panic(err)
	}
}
