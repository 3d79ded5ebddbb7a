package go4rs

import "testing"

func TestChannelHandleAddress(t *testing.T) {
	h := NewChannelHandle(0xdeadbeef)
	if h.Address() != 0xdeadbeef {
		t.Errorf("Address() = %#x, want %#x", h.Address(), uintptr(0xdeadbeef))
	}
}

func TestChannelHandleCopyEquality(t *testing.T) {
	a := NewChannelHandle(42)
	b := a
	if a != b {
		t.Error("copied handles should compare equal")
	}
	if a == NewChannelHandle(43) {
		t.Error("handles with different addresses should not compare equal")
	}
}

func TestChannelHandleString(t *testing.T) {
	h := NewChannelHandle(255)
	if h.String() != "ChannelHandle(0xff)" {
		t.Errorf("String() = %q, want %q", h.String(), "ChannelHandle(0xff)")
	}
}
