package types

type TypeID int

const (
	Invalid TypeID = iota
	Boolean
	Tinyint
	Smallint
	Integer
	BigInt
	Decimal
	Varchar
	Timestamp
)

// Size returns the serialized width in bytes of a fixed width type. For
// Varchar it returns the width of the length prefix; the payload length
// comes from the value itself.
func (t TypeID) Size() uint32 {
	switch t {
	case Boolean, Tinyint:
		return 1
	case Smallint:
		return 2
	case Integer, Decimal:
		return 4
	case BigInt, Timestamp:
		return 8
	case Varchar:
		return 2
	default:
		panic("not supported type")
	}
}

// Align returns the alignment requirement of a value of this type within a
// tuple data region. Varchar values need only the alignment of their length
// prefix.
func (t TypeID) Align() uint32 {
	switch t {
	case Boolean, Tinyint:
		return 1
	case Smallint, Varchar:
		return 2
	case Integer, Decimal:
		return 4
	case BigInt, Timestamp:
		return 8
	default:
		panic("not supported type")
	}
}

// IsVariable reports whether values of this type have data dependent width.
func (t TypeID) IsVariable() bool {
	return t == Varchar
}
