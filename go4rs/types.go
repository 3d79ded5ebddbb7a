package go4rs

import "reflect"

// Kind identifies the category of a type descriptor
type Kind int32

const (
	// KindBoolean is the built-in boolean type
	KindBoolean Kind = iota
	// KindByte is the built-in 8-bit signed integer type
	KindByte
	// KindShort is the built-in 16-bit signed integer type
	KindShort
	// KindInt is the built-in integer type
	KindInt
	// KindLong is the built-in 64-bit signed integer type
	KindLong
	// KindFloat is the built-in 32-bit floating point type
	KindFloat
	// KindDouble is the built-in 64-bit floating point type
	KindDouble
	// KindChar is the built-in UTF-16 code unit type
	KindChar
	// KindVoid is the "no value" sentinel type
	KindVoid
	// KindNamed is any type resolved by name through the registry
	KindNamed
)

// Char is a single UTF-16 code unit, the bridge's "char" primitive.
// It is a distinct type so that encoding can tell it apart from int32.
type Char uint16

// TypeDescriptor identifies a runtime type: one of the nine fixed primitive
// descriptors, or a type registered by name. Descriptors are compared by
// pointer identity; the package hands out exactly one descriptor per type.
type TypeDescriptor struct {
	name   string
	kind   Kind
	goType reflect.Type // nil for void
}

// Name returns the type name ("int", "void", or the registered name)
func (d *TypeDescriptor) Name() string {
	return d.name
}

// Kind returns the descriptor's category
func (d *TypeDescriptor) Kind() Kind {
	return d.kind
}

// IsPrimitive reports whether the descriptor is one of the nine built-ins
func (d *TypeDescriptor) IsPrimitive() bool {
	return d.kind != KindNamed
}

func (d *TypeDescriptor) String() string {
	return d.name
}

// The nine built-in descriptors. These bypass the registry: general name
// lookup mechanisms reject primitive keywords as malformed identifiers.
var (
	TypeBoolean = &TypeDescriptor{name: "boolean", kind: KindBoolean, goType: reflect.TypeOf((*bool)(nil)).Elem()}
	TypeByte    = &TypeDescriptor{name: "byte", kind: KindByte, goType: reflect.TypeOf((*int8)(nil)).Elem()}
	TypeShort   = &TypeDescriptor{name: "short", kind: KindShort, goType: reflect.TypeOf((*int16)(nil)).Elem()}
	TypeInt     = &TypeDescriptor{name: "int", kind: KindInt, goType: reflect.TypeOf((*int)(nil)).Elem()}
	TypeLong    = &TypeDescriptor{name: "long", kind: KindLong, goType: reflect.TypeOf((*int64)(nil)).Elem()}
	TypeFloat   = &TypeDescriptor{name: "float", kind: KindFloat, goType: reflect.TypeOf((*float32)(nil)).Elem()}
	TypeDouble  = &TypeDescriptor{name: "double", kind: KindDouble, goType: reflect.TypeOf((*float64)(nil)).Elem()}
	TypeChar    = &TypeDescriptor{name: "char", kind: KindChar, goType: reflect.TypeOf((*Char)(nil)).Elem()}
	TypeVoid    = &TypeDescriptor{name: "void", kind: KindVoid}
)

var primitivesByName = map[string]*TypeDescriptor{
	"boolean": TypeBoolean,
	"byte":    TypeByte,
	"short":   TypeShort,
	"int":     TypeInt,
	"long":    TypeLong,
	"float":   TypeFloat,
	"double":  TypeDouble,
	"char":    TypeChar,
	"void":    TypeVoid,
}

// GeneratedArg is one concrete argument prepared for a cross-boundary call:
// its resolved runtime type and its encoded payload. Arguments are read-only
// once constructed.
type GeneratedArg struct {
	typeDesc *TypeDescriptor
	value    EncodedValue
}

// NewGeneratedArg resolves typeName and encodes value into a call argument.
// It fails with ErrUnknownType when typeName resolves to nothing, and with
// ErrEncoding when the value cannot be serialized.
func NewGeneratedArg(typeName string, value any) (GeneratedArg, error) {
	desc, err := ResolveTypeName(typeName)
	if err != nil {
		return GeneratedArg{}, err
	}
	encoded, err := Encode(value)
	if err != nil {
		return GeneratedArg{}, err
	}
	return GeneratedArg{typeDesc: desc, value: encoded}, nil
}

// Type returns the argument's resolved type descriptor
func (a GeneratedArg) Type() *TypeDescriptor {
	return a.typeDesc
}

// Value returns the argument's encoded payload
func (a GeneratedArg) Value() EncodedValue {
	return a.value
}
