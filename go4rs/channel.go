package go4rs

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
)

// SendPrimitive is the single cross-boundary operation a callback channel
// depends on: deliver one encoded invocation to the native channel at the
// given address and return the native status code.
type SendPrimitive func(address uintptr, invocation string) int32

// CallbackChannel issues callbacks from Go into a native channel.
//
// A channel is created uninitialized. Its handle is assigned exactly once by
// the owning object's runtime infrastructure, normally right after
// construction and before any callback-triggering code runs; sending before
// that is a programming error. Once the handle is set, SendCallback is safe
// for concurrent use: the handle is published through an atomic pointer and
// treated as immutable afterwards.
type CallbackChannel struct {
	libName string
	send    SendPrimitive // nil when no send primitive is bound
	handle  atomic.Pointer[ChannelHandle]
}

// NewCallbackChannel creates an uninitialized channel and attempts to bind
// the native send primitive by loading the named native library.
//
// A load failure is diagnostic only: callback support is optional, and an
// object that never calls back must still be constructible with no native
// library present. The failure surfaces on the first SendCallback instead,
// as ErrCallbacksUnsupported.
func NewCallbackChannel(libName string) *CallbackChannel {
	c := &CallbackChannel{libName: libName}
	send, err := bindSendPrimitive(libName)
	if err != nil {
		logger.Warn("native callback library unavailable, callbacks disabled",
			"lib", libName, "err", err)
		return c
	}
	c.send = send
	return c
}

// NewCallbackChannelWithSend creates an uninitialized channel bound to an
// explicit send primitive, for embedders that deliver invocations through
// their own transport.
func NewCallbackChannelWithSend(send SendPrimitive) *CallbackChannel {
	return &CallbackChannel{send: send}
}

// NewLocalCallbackChannel creates an uninitialized channel whose send
// primitive delivers invocations in-process to the given handler instead of
// crossing the native boundary. This mirrors the native side's channel
// receiver and is useful for tests and pure-Go embeddings. The returned
// receiver is non-nil for channel-based handlers.
func NewLocalCallbackChannel(handler Handler[Invocation]) (*CallbackChannel, <-chan Invocation) {
	callback, _, receiver := handler.ToCbDropHandler()
	send := func(address uintptr, invocation string) int32 {
		var inv Invocation
		if err := json.Unmarshal([]byte(invocation), &inv); err != nil {
			logger.Warn("malformed local invocation", "err", err)
			return int32(ErrorCodeDecoding)
		}
		err := safeCall(func() error {
			callback(inv)
			return nil
		})
		if err != nil {
			return int32(ErrorCodeUnknown)
		}
		return int32(ErrorCodeSuccess)
	}
	return NewCallbackChannelWithSend(send), receiver
}

// SetHandle assigns the native channel handle, transitioning the channel to
// its ready state. The assignment happens exactly once in normal operation;
// a re-assignment overwrites the previous handle.
func (c *CallbackChannel) SetHandle(h ChannelHandle) {
	c.handle.Store(&h)
}

// Ready reports whether a handle has been assigned
func (c *CallbackChannel) Ready() bool {
	return c.handle.Load() != nil
}

// SendCallback encodes value into an invocation descriptor and delivers it
// to the native channel, returning the native status code unchanged. The
// call blocks the calling goroutine until the native side returns; callers
// that need non-blocking behaviour must dispatch onto their own goroutine.
//
// It fails with ErrIllegalCallbackState before a handle is assigned or when
// value is nil, and with ErrCallbacksUnsupported when no send primitive is
// bound.
func (c *CallbackChannel) SendCallback(value any) (int32, error) {
	h := c.handle.Load()
	if h == nil || value == nil {
		return 0, NewBridgeError(ErrorCodeIllegalCallbackState,
			"cannot send callback: the channel handle is not set or the value is nil; "+
				"make sure you are not sending callbacks from inside the constructor of "+
				"the owning object, before its handle has been assigned")
	}
	if c.send == nil {
		return 0, NewBridgeError(ErrorCodeCallbacksUnsupported,
			fmt.Sprintf("no native send primitive is bound (library %q was not loaded)", c.libName))
	}

	inv, err := NewInvocation(value)
	if err != nil {
		return 0, err
	}
	text, err := inv.Marshal()
	if err != nil {
		return 0, err
	}

	status := c.send(h.Address(), text)
	logger.Debug("docallbacktochannel", "class", inv.ClassName, "rc", status)
	return status, nil
}
