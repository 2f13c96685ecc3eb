package schema

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"hamachidb/common"
	"hamachidb/storage/table/column"
)

// Schema is the ordered descriptor set of one index key. Attribute offsets
// are not precomputed here; the tuple codec derives them lazily and caches
// them on the columns.
type Schema struct {
	columns []*column.Column
}

func NewSchema(columns []*column.Column) *Schema {
	names := mapset.NewSet[string]()
	for _, col := range columns {
		names.Add(col.GetColumnName())
	}
	common.HM_Assert(names.Cardinality() == len(columns), "duplicate column name in schema")

	schema := &Schema{}
	schema.columns = append(schema.columns, columns...)
	return schema
}

func (s *Schema) GetColumn(colIndex uint32) *column.Column {
	return s.columns[colIndex]
}

func (s *Schema) GetColumnCount() uint32 {
	return uint32(len(s.columns))
}

func (s *Schema) GetColumns() []*column.Column {
	return s.columns
}

func (s *Schema) GetColIndex(columnName string) uint32 {
	for i := uint32(0); i < s.GetColumnCount(); i++ {
		if s.columns[i].GetColumnName() == columnName {
			return i
		}
	}

	return math.MaxUint32
}

func (s *Schema) IsHaveColumn(columnName string) bool {
	return s.GetColIndex(columnName) != math.MaxUint32
}

// CopySchema builds the key schema of an index: the columns of from at the
// attrs positions, copied so the new schema starts with cold offset caches.
func CopySchema(from *Schema, attrs []uint32) *Schema {
	cols := make([]*column.Column, 0, len(attrs))
	for _, idx := range attrs {
		col := column.NewColumn(from.columns[idx].GetColumnName(), from.columns[idx].GetType(), from.columns[idx].HasIndex())
		cols = append(cols, col)
	}

	ret := new(Schema)
	ret.columns = cols
	return ret
}
