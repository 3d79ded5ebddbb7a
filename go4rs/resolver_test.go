package go4rs

import (
	"errors"
	"strings"
	"testing"
)

func TestResolvePrimitiveKeywords(t *testing.T) {
	cases := []struct {
		name string
		want *TypeDescriptor
	}{
		{"boolean", TypeBoolean},
		{"byte", TypeByte},
		{"short", TypeShort},
		{"int", TypeInt},
		{"long", TypeLong},
		{"float", TypeFloat},
		{"double", TypeDouble},
		{"char", TypeChar},
		{"void", TypeVoid},
	}

	for _, c := range cases {
		got, err := ResolveTypeName(c.name)
		if err != nil {
			t.Errorf("ResolveTypeName(%q) error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("ResolveTypeName(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestResolveRegisteredName(t *testing.T) {
	got, err := ResolveTypeName("string")
	if err != nil {
		t.Fatalf("ResolveTypeName(string) error: %v", err)
	}
	if got != TypeString {
		t.Errorf("ResolveTypeName(string) = %v, want %v", got, TypeString)
	}

	got, err = ResolveTypeName("test.Dummy")
	if err != nil {
		t.Fatalf("ResolveTypeName(test.Dummy) error: %v", err)
	}
	if got != dummyType {
		t.Errorf("ResolveTypeName(test.Dummy) = %v, want %v", got, dummyType)
	}
}

func TestResolveUnknownNameFails(t *testing.T) {
	_, err := ResolveTypeName("no.such.Type")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ResolveTypeName(no.such.Type) error = %v, want ErrUnknownType", err)
	}
	if !strings.Contains(err.Error(), "no.such.Type") {
		t.Errorf("error %q should carry the original name", err.Error())
	}
}

func TestResolveArgTypeEmpty(t *testing.T) {
	if got := ResolveArgType(nil); got != TypeVoid {
		t.Errorf("ResolveArgType(nil) = %v, want %v", got, TypeVoid)
	}
	if got := ResolveArgType([]GeneratedArg{}); got != TypeVoid {
		t.Errorf("ResolveArgType([]) = %v, want %v", got, TypeVoid)
	}
}

func TestResolveArgTypeSingle(t *testing.T) {
	arg, err := NewGeneratedArg("int", 5)
	if err != nil {
		t.Fatalf("NewGeneratedArg() error: %v", err)
	}
	if got := ResolveArgType([]GeneratedArg{arg}); got != TypeInt {
		t.Errorf("ResolveArgType([int]) = %v, want %v", got, TypeInt)
	}
}

func TestResolveArgTypeLastWins(t *testing.T) {
	first, err := NewGeneratedArg("int", 5)
	if err != nil {
		t.Fatalf("NewGeneratedArg(int) error: %v", err)
	}
	second, err := NewGeneratedArg("string", "five")
	if err != nil {
		t.Fatalf("NewGeneratedArg(string) error: %v", err)
	}

	if got := ResolveArgType([]GeneratedArg{first, second}); got != TypeString {
		t.Errorf("ResolveArgType([int, string]) = %v, want %v", got, TypeString)
	}
	if got := ResolveArgType([]GeneratedArg{second, first}); got != TypeInt {
		t.Errorf("ResolveArgType([string, int]) = %v, want %v", got, TypeInt)
	}
}
