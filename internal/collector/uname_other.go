//go:build !unix && !windows

package collector

import (
	"fmt"
	"runtime"
)

func readUname() (unameInfo, error) {
	return unameInfo{}, fmt.Errorf("uname not supported on %s", runtime.GOOS)
}
