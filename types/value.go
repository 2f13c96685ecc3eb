package types

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Value is a typed view over one attribute of an index key. Nullness is
// tracked on the value itself; the serialized form carries no null marker
// because the index tuple's null bitmap owns that information.
//
// Serialized form (little endian):
//
//	fixed width types: the raw value bytes, TypeID.Size() of them
//	Varchar:           uint16 payload length followed by the payload bytes
type Value struct {
	valueType TypeID
	isNull    bool
	boolean   *bool
	tinyInt   *int8
	smallInt  *int16
	integer   *int32
	bigInt    *int64
	float     *float32
	varchar   *string
	timestamp *uint64
}

func NewBoolean(value bool) Value {
	return Value{valueType: Boolean, boolean: &value}
}

func NewTinyint(value int8) Value {
	return Value{valueType: Tinyint, tinyInt: &value}
}

func NewSmallint(value int16) Value {
	return Value{valueType: Smallint, smallInt: &value}
}

func NewInteger(value int32) Value {
	return Value{valueType: Integer, integer: &value}
}

func NewBigInt(value int64) Value {
	return Value{valueType: BigInt, bigInt: &value}
}

func NewFloat(value float32) Value {
	return Value{valueType: Decimal, float: &value}
}

func NewVarchar(value string) Value {
	return Value{valueType: Varchar, varchar: &value}
}

func NewTimestamp(value uint64) Value {
	return Value{valueType: Timestamp, timestamp: &value}
}

// NewNull returns a null value of the given type.
func NewNull(valueType TypeID) Value {
	return Value{valueType: valueType, isNull: true}
}

// NewValueFromBytes deserializes one value of the given type from the head
// of data. data must hold at least Size() bytes of a serialized value.
func NewValueFromBytes(data []byte, valueType TypeID) (ret *Value) {
	switch valueType {
	case Boolean:
		v := new(bool)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vBoolean := NewBoolean(*v)
		ret = &vBoolean
	case Tinyint:
		v := new(int8)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vTinyint := NewTinyint(*v)
		ret = &vTinyint
	case Smallint:
		v := new(int16)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vSmallint := NewSmallint(*v)
		ret = &vSmallint
	case Integer:
		v := new(int32)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vInteger := NewInteger(*v)
		ret = &vInteger
	case BigInt:
		v := new(int64)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vBigInt := NewBigInt(*v)
		ret = &vBigInt
	case Decimal:
		v := new(float32)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vFloat := NewFloat(*v)
		ret = &vFloat
	case Varchar:
		length := binary.LittleEndian.Uint16(data)
		vVarchar := NewVarchar(string(data[2 : 2+length]))
		ret = &vVarchar
	case Timestamp:
		v := new(uint64)
		binary.Read(bytes.NewBuffer(data), binary.LittleEndian, v)
		vTimestamp := NewTimestamp(*v)
		ret = &vTimestamp
	default:
		fmt.Printf("%v is illegal\n", valueType)
		panic("")
	}
	return ret
}

func (v Value) ValueType() TypeID {
	return v.valueType
}

func (v Value) IsNull() bool {
	return v.isNull
}

func (v *Value) SetNull() {
	v.isNull = true
}

// Size returns the serialized width of the value in bytes, including the
// length prefix of a Varchar.
func (v Value) Size() uint32 {
	if v.valueType == Varchar {
		return v.valueType.Size() + uint32(len(*v.varchar))
	}
	return v.valueType.Size()
}

// Serialize encodes the value in the tuple wire form.
func (v Value) Serialize() []byte {
	switch v.valueType {
	case Boolean:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.boolean)
		return buf.Bytes()
	case Tinyint:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.tinyInt)
		return buf.Bytes()
	case Smallint:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.smallInt)
		return buf.Bytes()
	case Integer:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.integer)
		return buf.Bytes()
	case BigInt:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.bigInt)
		return buf.Bytes()
	case Decimal:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.float)
		return buf.Bytes()
	case Varchar:
		ret := make([]byte, 2+len(*v.varchar))
		binary.LittleEndian.PutUint16(ret, uint16(len(*v.varchar)))
		copy(ret[2:], *v.varchar)
		return ret
	case Timestamp:
		buf := new(bytes.Buffer)
		binary.Write(buf, binary.LittleEndian, v.timestamp)
		return buf.Bytes()
	default:
		panic("not supported type")
	}
}

func (v Value) ToBoolean() bool {
	return *v.boolean
}

func (v Value) ToTinyint() int8 {
	return *v.tinyInt
}

func (v Value) ToSmallint() int16 {
	return *v.smallInt
}

func (v Value) ToInteger() int32 {
	return *v.integer
}

func (v Value) ToBigInt() int64 {
	return *v.bigInt
}

func (v Value) ToFloat() float32 {
	return *v.float
}

func (v Value) ToVarchar() string {
	return *v.varchar
}

func (v Value) ToTimestamp() uint64 {
	return *v.timestamp
}

func (v Value) CompareEquals(right Value) bool {
	if v.IsNull() && right.IsNull() {
		return true
	} else if v.IsNull() || right.IsNull() {
		return false
	}

	switch v.valueType {
	case Boolean:
		return *v.boolean == *right.boolean
	case Tinyint:
		return *v.tinyInt == *right.tinyInt
	case Smallint:
		return *v.smallInt == *right.smallInt
	case Integer:
		return *v.integer == *right.integer
	case BigInt:
		return *v.bigInt == *right.bigInt
	case Decimal:
		return *v.float == *right.float
	case Varchar:
		return *v.varchar == *right.varchar
	case Timestamp:
		return *v.timestamp == *right.timestamp
	}
	return false
}

func (v Value) CompareNotEquals(right Value) bool {
	return !v.CompareEquals(right)
}

func (v Value) CompareLessThan(right Value) bool {
	if v.IsNull() || right.IsNull() {
		return false
	}

	switch v.valueType {
	case Tinyint:
		return *v.tinyInt < *right.tinyInt
	case Smallint:
		return *v.smallInt < *right.smallInt
	case Integer:
		return *v.integer < *right.integer
	case BigInt:
		return *v.bigInt < *right.bigInt
	case Decimal:
		return *v.float < *right.float
	case Varchar:
		return *v.varchar < *right.varchar
	case Timestamp:
		return *v.timestamp < *right.timestamp
	}
	return false
}
