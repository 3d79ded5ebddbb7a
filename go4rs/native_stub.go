//go:build !cgo || (!linux && !darwin)

package go4rs

import "fmt"

// bindSendPrimitive always fails on builds without dynamic-library support.
// Everything except native callbacks keeps working; SendCallback reports
// ErrCallbacksUnsupported.
func bindSendPrimitive(libName string) (SendPrimitive, error) {
	return nil, NewBridgeError(ErrorCodeLibraryLoad,
		fmt.Sprintf("cannot load %q: built without cgo dynamic-library support", libName))
}
