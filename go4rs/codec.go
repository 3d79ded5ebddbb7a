package go4rs

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// EncodedValue is a value's textual, self-describing serialized form: the
// JSON text paired with the descriptor of the source value's runtime type.
// It is immutable once constructed.
type EncodedValue struct {
	typeDesc *TypeDescriptor
	json     string
}

// Type returns the descriptor captured at encode time
func (v EncodedValue) Type() *TypeDescriptor {
	return v.typeDesc
}

// JSON returns the serialized text
func (v EncodedValue) JSON() string {
	return v.json
}

// Encode serializes a value to JSON and records its runtime type descriptor.
// Primitives, strings and registered composite types are supported; an
// unregistered composite type fails with ErrorCodeEncoding. Integer widths
// normalize to the descriptor's canonical type on decode (int and int32 both
// encode as "int"), which preserves equality-by-encoding.
func Encode(value any) (EncodedValue, error) {
	if value == nil {
		return EncodedValue{}, NewBridgeError(ErrorCodeEncoding, "cannot encode a nil value")
	}
	desc, err := descriptorOf(value)
	if err != nil {
		return EncodedValue{}, err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return EncodedValue{}, NewBridgeError(ErrorCodeEncoding,
			fmt.Sprintf("serializing %s value: %v", desc.Name(), err))
	}
	return EncodedValue{typeDesc: desc, json: string(b)}, nil
}

// Decode reconstructs a value from its textual encoding, using the recorded
// descriptor as the decode target. Primitive and string values round-trip
// exactly; composite values round-trip structurally (a fresh instance with
// equal field values). Text that does not conform to the recorded type's
// shape fails with ErrorCodeDecoding.
func Decode(v EncodedValue) (any, error) {
	d := v.typeDesc
	if d == nil {
		return nil, NewBridgeError(ErrorCodeDecoding, "encoded value carries no type descriptor")
	}
	if d.Kind() == KindVoid {
		return nil, nil
	}
	target := d.newValue()
	if err := json.Unmarshal([]byte(v.json), target); err != nil {
		return nil, NewBridgeError(ErrorCodeDecoding,
			fmt.Sprintf("decoding %q as %s: %v", v.json, d.Name(), err))
	}
	return reflect.ValueOf(target).Elem().Interface(), nil
}

func descriptorOf(value any) (*TypeDescriptor, error) {
	switch value.(type) {
	case bool:
		return TypeBoolean, nil
	case int8:
		return TypeByte, nil
	case int16:
		return TypeShort, nil
	case int, int32:
		return TypeInt, nil
	case int64:
		return TypeLong, nil
	case float32:
		return TypeFloat, nil
	case float64:
		return TypeDouble, nil
	case Char:
		return TypeChar, nil
	}
	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if d, ok := registry.lookupType(t); ok {
		return d, nil
	}
	return nil, NewBridgeError(ErrorCodeEncoding,
		fmt.Sprintf("type %s is not registered; register it with RegisterType before encoding", t))
}
