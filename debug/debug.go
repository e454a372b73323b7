package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	JSON   bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("CBOR_DEBUG_DECODE")
	d.JSON = boolEnv("CBOR_DEBUG_JSON")
	d.Diff = boolEnv("CBOR_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}

func JSON() bool {
	return d.JSON
}

func Diff() bool {
	return d.Diff
}
