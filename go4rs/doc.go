// Package go4rs bridges Go values to a Rust-owned callback channel across
// the C ABI.
//
// The package encodes Go values to a self-describing JSON form, resolves
// runtime type descriptors for call arguments, and delivers encoded
// invocations to a native channel identified by an opaque handle.
//
// Callback support is optional: a CallbackChannel is constructible even when
// the native library is missing, and reports a clear error on the first send
// attempt instead. SendCallback is a blocking call into the native side;
// callers that need non-blocking behaviour must dispatch it onto their own
// goroutine.
//
// The channel handle is borrowed from the native side. The Go side never
// dereferences or frees it, and cannot detect that the native side has
// released the underlying resource.
package go4rs
