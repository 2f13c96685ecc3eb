package hash

import (
	"testing"

	"hamachidb/types"

	testingpkg "hamachidb/testing"
)

func TestGenHashMurMurIsDeterministic(t *testing.T) {
	key := []byte("index key bytes")
	testingpkg.Equals(t, GenHashMurMur(key), GenHashMurMur(key))
	testingpkg.Assert(t, GenHashMurMur(key) != GenHashMurMur([]byte("other key")),
		"different keys should not hash alike")
}

func TestHashValueUsesSerializedForm(t *testing.T) {
	a := types.NewInteger(42)
	b := types.NewInteger(42)
	testingpkg.Equals(t, HashValue(&a), HashValue(&b))
}

func TestGenIndexKeyHashSeparatesNullFromZero(t *testing.T) {
	// a present zero valued attribute and an absent one have the same data
	// bytes (none vs zeros differ) but distinct bitmaps
	zeroData := []byte{0, 0, 0, 0}
	emptyBitmap := []byte{0, 0, 0, 0}
	nullBitmap := []byte{1, 0, 0, 0}

	testingpkg.Assert(t,
		GenIndexKeyHash(emptyBitmap, zeroData) != GenIndexKeyHash(nullBitmap, nil),
		"null key must not hash like a zero valued key")
}
