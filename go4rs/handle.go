package go4rs

import "fmt"

// ChannelHandle is an opaque, copyable reference to a callback channel owned
// by the native side: an address the Go side only ever compares and passes
// through, never dereferences.
//
// The handle is borrowed. The underlying native resource is created and
// released by the native side alone; the Go side cannot detect that the
// resource has been released, so a handle stays valid only as long as the
// native side guarantees it.
type ChannelHandle struct {
	address uintptr
}

// NewChannelHandle wraps a native channel address handed over by the
// native side
func NewChannelHandle(address uintptr) ChannelHandle {
	return ChannelHandle{address: address}
}

// Address returns the raw address token for pass-through to the native side
func (h ChannelHandle) Address() uintptr {
	return h.address
}

func (h ChannelHandle) String() string {
	return fmt.Sprintf("ChannelHandle(0x%x)", h.address)
}
