package result

import (
	"bytes"
	"runtime"
	"strconv"
)

// goid parses the current goroutine id out of the runtime stack header
// ("goroutine 12 [running]:"). The runtime offers no direct accessor.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
