package itup

import (
	"testing"

	"hamachidb/storage/page"
	"hamachidb/storage/table/column"
	"hamachidb/storage/table/schema"
	"hamachidb/types"

	testingpkg "hamachidb/testing"
)

func TestRegionOffsets(t *testing.T) {
	// no optional regions
	testingpkg.Equals(t, uint32(16), DataOffset(0))
	// bitmap alone fits the header padding
	testingpkg.Equals(t, uint32(16), DataOffset(IndexNullMask))
	// the count region shifts the data region
	testingpkg.Equals(t, uint32(24), DataOffset(IndexHasCount))
	testingpkg.Equals(t, uint32(24), DataOffset(IndexNullMask|IndexHasCount))

	testingpkg.Equals(t, uint32(16), CountOffset(IndexHasCount))
	testingpkg.Equals(t, uint32(16), CountOffset(IndexNullMask|IndexHasCount))
}

func TestAlignLength(t *testing.T) {
	testingpkg.Equals(t, uint32(0), MaxAlign(0))
	testingpkg.Equals(t, uint32(8), MaxAlign(1))
	testingpkg.Equals(t, uint32(8), MaxAlign(8))
	testingpkg.Equals(t, uint32(16), MaxAlign(9))
	testingpkg.Equals(t, uint32(4), AlignLength(4, 3))
	testingpkg.Equals(t, uint32(6), AlignLength(2, 5))
}

func TestFormTupleScenario(t *testing.T) {
	// [int32, varchar, int32] with [42, "hi", null]
	columnA := column.NewColumn("a", types.Integer, false)
	columnB := column.NewColumn("b", types.Varchar, false)
	columnC := column.NewColumn("c", types.Integer, false)
	schema_ := schema.NewSchema([]*column.Column{columnA, columnB, columnC})

	values := []types.Value{types.NewInteger(42), types.NewVarchar("hi"), types.NewNull(types.Integer)}
	isNull := []bool{false, false, true}

	it, err := FormTuple(schema_, values, isNull)
	testingpkg.Ok(t, err)

	testingpkg.Assert(t, it.HasNulls(), "tuple with a null attribute must set the null flag")
	testingpkg.Assert(t, it.HasVarwidths(), "tuple with a varchar must set the varwidth flag")
	testingpkg.Assert(t, !it.HasCount(), "plain FormTuple must not add a count region")
	testingpkg.Assert(t, !it.AttrIsNull(1), "attribute 1 is present")
	testingpkg.Assert(t, !it.AttrIsNull(2), "attribute 2 is present")
	testingpkg.Assert(t, it.AttrIsNull(3), "attribute 3 is null")
	// data region: int32 at 0, varchar prefixed at 4, nothing for the null
	testingpkg.Equals(t, uint32(24), it.Size())
	testingpkg.Ok(t, it.Validate())

	decoded, decodedNull, err := DeformTuple(it, schema_)
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, []bool{false, false, true}, decodedNull)
	testingpkg.Equals(t, int32(42), decoded[0].ToInteger())
	testingpkg.Equals(t, "hi", decoded[1].ToVarchar())
	testingpkg.Assert(t, decoded[2].IsNull(), "decoded attribute 3 must be null")
}

func TestBitmapSizeIsFixed(t *testing.T) {
	// the data offset depends on the null flag only, never on how many
	// columns the schema actually has
	narrow := schema.NewSchema([]*column.Column{
		column.NewColumn("a", types.Integer, false),
		column.NewColumn("b", types.Integer, false),
	})
	wide := schema.NewSchema([]*column.Column{
		column.NewColumn("a", types.Integer, false),
		column.NewColumn("b", types.Integer, false),
		column.NewColumn("c", types.Integer, false),
		column.NewColumn("d", types.Integer, false),
		column.NewColumn("e", types.Integer, false),
	})

	narrowTuple, err := FormTuple(narrow,
		[]types.Value{types.NewInteger(1), types.NewNull(types.Integer)},
		[]bool{false, true})
	testingpkg.Ok(t, err)
	wideTuple, err := FormTuple(wide,
		[]types.Value{types.NewInteger(1), types.NewNull(types.Integer), types.NewInteger(3), types.NewInteger(4), types.NewInteger(5)},
		[]bool{false, true, false, false, false})
	testingpkg.Ok(t, err)

	testingpkg.Equals(t, DataOffset(narrowTuple.Info()), DataOffset(wideTuple.Info()))
}

func TestRIDRoundTrip(t *testing.T) {
	schema_ := schema.NewSchema([]*column.Column{column.NewColumn("a", types.Integer, false)})
	it, err := FormTuple(schema_, []types.Value{types.NewInteger(1)}, []bool{false})
	testingpkg.Ok(t, err)

	rid := new(page.RID)
	rid.Set(types.PageID(11), uint32(5))
	it.SetRID(rid)
	testingpkg.Equals(t, types.PageID(11), it.GetRID().GetPageId())
	testingpkg.Equals(t, uint32(5), it.GetRID().GetSlot())
	// pointing at the heap never disturbs size or flags
	testingpkg.Ok(t, it.Validate())
	testingpkg.Equals(t, uint32(20), it.Size())
}

func TestValidateRejectsTruncation(t *testing.T) {
	schema_ := schema.NewSchema([]*column.Column{column.NewColumn("a", types.BigInt, false)})
	it, err := FormTuple(schema_, []types.Value{types.NewBigInt(1)}, []bool{false})
	testingpkg.Ok(t, err)
	testingpkg.Ok(t, it.Validate())

	truncated := it[:len(it)-4]
	testingpkg.Equals(t, ErrMalformedTuple, truncated.Validate())

	var tiny IndexTuple = []byte{0x01}
	testingpkg.Equals(t, ErrMalformedTuple, tiny.Validate())
}

func TestFormTupleSizeOverflow(t *testing.T) {
	schema_ := schema.NewSchema([]*column.Column{column.NewColumn("v", types.Varchar, false)})

	// 16 byte data offset + 2 byte prefix + payload: 8191 is the ceiling
	huge := make([]byte, 8200)
	_, err := FormTuple(schema_, []types.Value{types.NewVarchar(string(huge))}, []bool{false})
	testingpkg.Equals(t, ErrSizeOverflow, err)

	// one byte over must fail too, never wrap the 13 bit field
	over := make([]byte, 8174)
	_, err = FormTuple(schema_, []types.Value{types.NewVarchar(string(over))}, []bool{false})
	testingpkg.Equals(t, ErrSizeOverflow, err)

	// at the ceiling it still encodes
	fit := make([]byte, 8173)
	it, err := FormTuple(schema_, []types.Value{types.NewVarchar(string(fit))}, []bool{false})
	testingpkg.Ok(t, err)
	testingpkg.Equals(t, uint32(8191), it.Size())
	testingpkg.Ok(t, it.Validate())
}
