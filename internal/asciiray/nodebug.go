//go:build !debug
// +build !debug

package asciiray

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
