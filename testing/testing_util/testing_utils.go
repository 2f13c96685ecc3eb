package testing_util

import (
	"hamachidb/types"
)

func GetValue(data interface{}) (value types.Value) {
	switch v := data.(type) {
	case int:
		value = types.NewInteger(int32(v))
	case int32:
		value = types.NewInteger(v)
	case int64:
		value = types.NewBigInt(v)
	case float32:
		value = types.NewFloat(v)
	case string:
		value = types.NewVarchar(v)
	case bool:
		value = types.NewBoolean(v)
	case *types.Value:
		val := data.(*types.Value)
		return *val
	}
	return
}

func GetValueType(data interface{}) (value types.TypeID) {
	switch data.(type) {
	case int, int32:
		return types.Integer
	case int64:
		return types.BigInt
	case float32:
		return types.Decimal
	case string:
		return types.Varchar
	case bool:
		return types.Boolean
	case *types.Value:
		val := data.(*types.Value)
		return val.ValueType()
	}
	panic("not implemented")
}
