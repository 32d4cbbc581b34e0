package sdbase

type FieldType int

const (
	UnsetType FieldType = iota
	IntType
	UintType
	FloatType
	BoolType
	StringType
	AnyType
	ErrorType
)

// Field is heavily influenced by Uber's zapcore.Field: a closed
// tagged union over the primitive value categories so that common
// values do not need to round-trip through interface{}.
type Field struct {
	Key    string
	Type   FieldType
	Int    int64
	Uint   uint64
	Float  float64
	String string
	Any    interface{}
}

func Int64(k string, v int64) Field   { return Field{Key: k, Type: IntType, Int: v} }
func Int32(k string, v int32) Field   { return Field{Key: k, Type: IntType, Int: int64(v)} }
func Int16(k string, v int16) Field   { return Field{Key: k, Type: IntType, Int: int64(v)} }
func Int8(k string, v int8) Field     { return Field{Key: k, Type: IntType, Int: int64(v)} }
func Int(k string, v int) Field       { return Field{Key: k, Type: IntType, Int: int64(v)} }
func Uint64(k string, v uint64) Field { return Field{Key: k, Type: UintType, Uint: v} }
func Uint32(k string, v uint32) Field { return Field{Key: k, Type: UintType, Uint: uint64(v)} }
func Uint16(k string, v uint16) Field { return Field{Key: k, Type: UintType, Uint: uint64(v)} }
func Uint8(k string, v uint8) Field   { return Field{Key: k, Type: UintType, Uint: uint64(v)} }
func Uint(k string, v uint) Field     { return Field{Key: k, Type: UintType, Uint: uint64(v)} }
func Float64(k string, v float64) Field {
	return Field{Key: k, Type: FloatType, Float: v}
}
func Float32(k string, v float32) Field {
	return Field{Key: k, Type: FloatType, Float: float64(v)}
}
func Bool(k string, v bool) Field              { return Field{Key: k, Type: BoolType, Any: v} }
func String(k string, v string) Field          { return Field{Key: k, Type: StringType, String: v} }
func Any(k string, v interface{}) Field        { return Field{Key: k, Type: AnyType, Any: v} }
func Error(k string, v error) Field            { return Field{Key: k, Type: ErrorType, Any: v} }
