package index

import (
	"hamachidb/storage/table/schema"
)

// IndexMetadata holds the schema side of an index: callers hand it whole
// table rows, and the metadata knows which attributes form the key and what
// their descriptors look like.
type IndexMetadata struct {
	name      string
	tableName string
	// mapping from key schema positions to table schema positions
	keyAttrs []uint32
	// schema of the indexed key
	keySchema *schema.Schema
}

func NewIndexMetadata(indexName string, tableName string, tupleSchema *schema.Schema, keyAttrs []uint32) *IndexMetadata {
	ret := new(IndexMetadata)
	ret.name = indexName
	ret.tableName = tableName
	ret.keyAttrs = keyAttrs
	ret.keySchema = schema.CopySchema(tupleSchema, keyAttrs)
	return ret
}

func (im *IndexMetadata) GetName() string {
	return im.name
}

func (im *IndexMetadata) GetTableName() string {
	return im.tableName
}

// GetKeySchema returns the descriptor set of the indexed key
func (im *IndexMetadata) GetKeySchema() *schema.Schema {
	return im.keySchema
}

// GetIndexColumnCount returns the number of key columns (not table columns)
func (im *IndexMetadata) GetIndexColumnCount() uint32 {
	return uint32(len(im.keyAttrs))
}

// GetKeyAttrs returns the mapping between key columns and table columns
func (im *IndexMetadata) GetKeyAttrs() []uint32 {
	return im.keyAttrs
}
