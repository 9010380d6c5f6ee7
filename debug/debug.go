package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve   bool
	Op        bool
	Lifecycle bool
	Store     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("DEFPATCH_DEBUG_RESOLVE")
	d.Op = boolEnv("DEFPATCH_DEBUG_OP")
	d.Lifecycle = boolEnv("DEFPATCH_DEBUG_LIFECYCLE")
	d.Store = boolEnv("DEFPATCH_DEBUG_STORE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Op() bool {
	return d.Op
}
func Lifecycle() bool {
	return d.Lifecycle
}
func Store() bool {
	return d.Store
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
