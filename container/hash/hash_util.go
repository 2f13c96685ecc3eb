package hash

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"

	"hamachidb/types"
)

// GenHashMurMur hashes raw key bytes with murmur3.
func GenHashMurMur(key []byte) uint32 {
	h := murmur3.New128()
	h.Write(key)

	hash := h.Sum(nil)

	return binary.LittleEndian.Uint32(hash)
}

// HashValue hashes one key value through its serialized form.
func HashValue(val *types.Value) uint32 {
	return GenHashMurMur(val.Serialize())
}

// GenIndexKeyHash hashes the key portion of an encoded index entry: the null
// bitmap (absent attributes must hash differently from zero valued ones)
// followed by the attribute data bytes. The aggregate count region is
// deliberately excluded so entries for the same key hash alike whatever
// their counts.
func GenIndexKeyHash(nullBitmap []byte, dataBytes []byte) uint32 {
	h := murmur3.New128()
	h.Write(nullBitmap)
	h.Write(dataBytes)

	hash := h.Sum(nil)

	return binary.LittleEndian.Uint32(hash)
}
