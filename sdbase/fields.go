package sdbase

import (
	"github.com/pkg/errors"
)

// VisitFields delivers each field to its typed callback.  A field
// whose type was never set is a bug at the call site; it is reported
// as an error rather than a panic because the emission path must not
// be able to fault the caller.  A typed field whose payload slot was
// never filled degrades to the Any callback for the same reason.
func VisitFields(visitor Visitor, fields []Field) error {
	for _, field := range fields {
		switch field.Type {
		case IntType:
			visitor.Int64(field.Key, field.Int)
		case UintType:
			visitor.Uint64(field.Key, field.Uint)
		case FloatType:
			visitor.Float64(field.Key, field.Float)
		case BoolType:
			if val, ok := field.Any.(bool); ok {
				visitor.Bool(field.Key, val)
			} else {
				visitor.Any(field.Key, field.Any)
			}
		case StringType:
			visitor.String(field.Key, field.String)
		case AnyType:
			visitor.Any(field.Key, field.Any)
		case ErrorType:
			if err, ok := field.Any.(error); ok && err != nil {
				visitor.Error(field.Key, err)
			} else {
				visitor.Any(field.Key, field.Any)
			}
		case UnsetType:
			fallthrough
		default:
			return errors.Errorf("malformed field %q: type is %d", field.Key, field.Type)
		}
	}
	return nil
}
