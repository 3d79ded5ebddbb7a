package go4rs

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
)

// logger is the package-level structured logger.
// Set GO4RS_LOG=DEBUG|INFO|WARN|ERROR to control verbosity at runtime.
// Default is WARN so production binaries are silent.
var logger = func() *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv("GO4RS_LOG"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}()

// safeCall runs fn and recovers any panic, returning it as an error.
// Use this around any user code invoked from a native thread to prevent
// Go panics from crossing the C boundary (which is undefined behaviour).
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in native-thread callback",
				"recover", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
			err = fmt.Errorf("panic in callback: %v", r)
		}
	}()
	return fn()
}
