//go:build cgo && (linux || darwin)

package go4rs

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
#include <stdint.h>

typedef int32_t (*go4rs_send_fn)(uintptr_t, const char*);

static void* go4rs_dlopen(const char* path) {
	return dlopen(path, RTLD_LAZY | RTLD_LOCAL);
}
static char* go4rs_dlerror(void) {
	return dlerror();
}

// Clear dlerror, call dlsym, and return the error (if any) alongside the symbol.
static void* go4rs_dlsym_clear(void* h, const char* name, char** err) {
	dlerror();
	void* p = dlsym(h, name);
	char* e = dlerror();
	if (e) { if (err) *err = e; return NULL; }
	if (err) *err = NULL;
	return p;
}

// Call wrapper: avoids cgo's function-pointer type constraints at the call site.
static int32_t go4rs_call_send(void* fn, uintptr_t address, const char* invocation) {
	return ((go4rs_send_fn)fn)(address, invocation);
}
*/
import "C"
import (
	"fmt"
	"runtime"
	"unsafe"
)

// sendSymbol is the exported name of the native send primitive
const sendSymbol = "docallbacktochannel"

// libraryFileName maps a logical library name to the platform file name
func libraryFileName(name string) string {
	if runtime.GOOS == "darwin" {
		return "lib" + name + ".dylib"
	}
	return "lib" + name + ".so"
}

// bindSendPrimitive loads the named native library and resolves the send
// primitive. The library handle is never closed: the binding lives for the
// process lifetime, like the native side expects.
func bindSendPrimitive(libName string) (SendPrimitive, error) {
	fileName := libraryFileName(libName)
	cPath := C.CString(fileName)
	defer C.free(unsafe.Pointer(cPath))

	h := C.go4rs_dlopen(cPath)
	if h == nil {
		return nil, NewBridgeError(ErrorCodeLibraryLoad,
			fmt.Sprintf("dlopen %s: %s", fileName, C.GoString(C.go4rs_dlerror())))
	}

	cSym := C.CString(sendSymbol)
	defer C.free(unsafe.Pointer(cSym))

	var cErr *C.char
	fn := C.go4rs_dlsym_clear(h, cSym, &cErr)
	if fn == nil {
		return nil, NewBridgeError(ErrorCodeLibraryLoad,
			fmt.Sprintf("dlsym %s in %s: %s", sendSymbol, fileName, C.GoString(cErr)))
	}

	send := func(address uintptr, invocation string) int32 {
		cInv := C.CString(invocation)
		defer C.free(unsafe.Pointer(cInv))
		return int32(C.go4rs_call_send(fn, C.uintptr_t(address), cInv))
	}
	return send, nil
}
