//go:build !windows

package core

import "runtime"

// IsWindows10OrAbove is trivially true off Windows: the version
// pre-flight only exists to warn about ancient Windows installs.
func IsWindows10OrAbove() bool {
	return true
}

// OSVersionString returns the platform name for the version banner.
func OSVersionString() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
