//go:build windows

package collector

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func readUname() (unameInfo, error) {
	v := windows.RtlGetVersion()
	if v == nil {
		return unameInfo{}, fmt.Errorf("RtlGetVersion returned no data")
	}
	return unameInfo{
		System:  "Windows",
		Release: fmt.Sprintf("%d", v.MajorVersion),
		Version: fmt.Sprintf("%d.%d.%d", v.MajorVersion, v.MinorVersion, v.BuildNumber),
		Machine: os.Getenv("PROCESSOR_ARCHITECTURE"),
	}, nil
}
