package go4rs

import (
	"errors"
	"testing"
)

func TestPrimitiveDescriptors(t *testing.T) {
	cases := []struct {
		desc *TypeDescriptor
		name string
		kind Kind
	}{
		{TypeBoolean, "boolean", KindBoolean},
		{TypeByte, "byte", KindByte},
		{TypeShort, "short", KindShort},
		{TypeInt, "int", KindInt},
		{TypeLong, "long", KindLong},
		{TypeFloat, "float", KindFloat},
		{TypeDouble, "double", KindDouble},
		{TypeChar, "char", KindChar},
		{TypeVoid, "void", KindVoid},
	}

	for _, c := range cases {
		if c.desc.Name() != c.name {
			t.Errorf("Name() = %q, want %q", c.desc.Name(), c.name)
		}
		if c.desc.Kind() != c.kind {
			t.Errorf("%s: Kind() = %d, want %d", c.name, c.desc.Kind(), c.kind)
		}
		if !c.desc.IsPrimitive() {
			t.Errorf("%s: IsPrimitive() = false, want true", c.name)
		}
	}
}

func TestNamedDescriptorIsNotPrimitive(t *testing.T) {
	if TypeString.IsPrimitive() {
		t.Error("string descriptor should not be primitive")
	}
	if TypeString.Kind() != KindNamed {
		t.Errorf("Kind() = %d, want %d", TypeString.Kind(), KindNamed)
	}
}

func TestRegisterTypeIdempotent(t *testing.T) {
	again, err := RegisterType[dummy]("test.Dummy")
	if err != nil {
		t.Fatalf("re-registering same pairing: %v", err)
	}
	if again != dummyType {
		t.Error("re-registration should return the existing descriptor")
	}
}

func TestRegisterTypeConflicts(t *testing.T) {
	type other struct{ X int }

	if _, err := RegisterType[other]("test.Dummy"); err == nil {
		t.Error("reusing a name for a different type should fail")
	}
	if _, err := RegisterType[other]("int"); err == nil {
		t.Error("registering a primitive keyword should fail")
	}
	if _, err := RegisterType[*other]("test.OtherPtr"); err == nil {
		t.Error("registering a pointer type should fail")
	}
}

func TestNewGeneratedArg(t *testing.T) {
	arg, err := NewGeneratedArg("test.Dummy", dummy{I: 9})
	if err != nil {
		t.Fatalf("NewGeneratedArg() error: %v", err)
	}
	if arg.Type() != dummyType {
		t.Errorf("Type() = %v, want %v", arg.Type(), dummyType)
	}
	if arg.Value().JSON() != `{"i":9}` {
		t.Errorf("Value().JSON() = %q, want %q", arg.Value().JSON(), `{"i":9}`)
	}
}

func TestNewGeneratedArgUnknownType(t *testing.T) {
	_, err := NewGeneratedArg("no.such.Type", 1)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("NewGeneratedArg() error = %v, want ErrUnknownType", err)
	}
}
