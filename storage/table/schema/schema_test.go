package schema

import (
	"testing"

	"hamachidb/storage/table/column"
	"hamachidb/types"

	testingpkg "hamachidb/testing"
)

func TestNewSchemaRejectsDuplicateNames(t *testing.T) {
	defer func() {
		testingpkg.Assert(t, recover() != nil, "duplicate column names must be rejected")
	}()
	NewSchema([]*column.Column{
		column.NewColumn("a", types.Integer, false),
		column.NewColumn("a", types.Varchar, false),
	})
}

func TestCopySchemaSelectsKeyAttrs(t *testing.T) {
	tableSchema := NewSchema([]*column.Column{
		column.NewColumn("id", types.Integer, false),
		column.NewColumn("name", types.Varchar, true),
		column.NewColumn("age", types.Integer, false),
	})

	keySchema := CopySchema(tableSchema, []uint32{2, 1})
	testingpkg.Equals(t, uint32(2), keySchema.GetColumnCount())
	testingpkg.Equals(t, "age", keySchema.GetColumn(0).GetColumnName())
	testingpkg.Equals(t, "name", keySchema.GetColumn(1).GetColumnName())
	// key columns start with cold offset caches of their own
	testingpkg.Equals(t, int32(-1), keySchema.GetColumn(0).CachedOffset())
}

func TestGetColIndex(t *testing.T) {
	schema_ := NewSchema([]*column.Column{
		column.NewColumn("a", types.Integer, false),
		column.NewColumn("b", types.Varchar, false),
	})
	testingpkg.Equals(t, uint32(1), schema_.GetColIndex("b"))
	testingpkg.Assert(t, !schema_.IsHaveColumn("zzz"), "unknown column must not be found")
}
