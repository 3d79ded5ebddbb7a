package go4rs

import "fmt"

// ResolveTypeName resolves a type name to its descriptor. The nine primitive
// keywords (boolean, byte, short, int, long, float, double, char, void) map
// to the fixed built-in descriptors; every other name is looked up in the
// type registry. An unresolvable name fails with ErrorCodeUnknownType,
// carrying the original name in the message.
func ResolveTypeName(name string) (*TypeDescriptor, error) {
	if d, ok := primitivesByName[name]; ok {
		return d, nil
	}
	if d, ok := registry.lookupName(name); ok {
		return d, nil
	}
	return nil, NewBridgeError(ErrorCodeUnknownType,
		fmt.Sprintf("unknown type name %q: not a primitive keyword and not registered", name))
}

// ResolveArgType returns the single runtime type a set of prepared call
// arguments collectively represents: the LAST argument's type, or void for
// an empty argument list.
//
// Keeping only the last seen type is a deliberate simplification; there is
// currently no need to converge to a common parent of all the argument
// types. Callers that need a common supertype must compute it themselves.
func ResolveArgType(args []GeneratedArg) *TypeDescriptor {
	if len(args) == 0 {
		return TypeVoid
	}
	return args[len(args)-1].Type()
}
