package types

import (
	"testing"

	testingpkg "hamachidb/testing"
)

func TestVarcharSerializeCarriesLengthPrefix(t *testing.T) {
	v := NewVarchar("héllo")
	raw := v.Serialize()
	testingpkg.Equals(t, v.Size(), uint32(len(raw)))

	decoded := NewValueFromBytes(raw, Varchar)
	testingpkg.Equals(t, "héllo", decoded.ToVarchar())
}

func TestNullComparisons(t *testing.T) {
	null := NewNull(Integer)
	testingpkg.Assert(t, null.IsNull(), "NewNull must produce a null value")
	testingpkg.Assert(t, null.CompareEquals(NewNull(Integer)), "null equals null")
	testingpkg.Assert(t, !null.CompareEquals(NewInteger(0)), "null does not equal zero")
	testingpkg.Assert(t, !null.CompareLessThan(NewInteger(1)), "null compares less than nothing")
}

func TestFixedWidthRoundTrip(t *testing.T) {
	big := NewBigInt(-987654321012345)
	testingpkg.Equals(t, int64(-987654321012345), NewValueFromBytes(big.Serialize(), BigInt).ToBigInt())

	ts := NewTimestamp(1700000000)
	testingpkg.Equals(t, uint64(1700000000), NewValueFromBytes(ts.Serialize(), Timestamp).ToTimestamp())

	dec := NewFloat(-2.75)
	testingpkg.Equals(t, Decimal, dec.ValueType())
	testingpkg.Equals(t, float32(-2.75), NewValueFromBytes(dec.Serialize(), Decimal).ToFloat())
}
