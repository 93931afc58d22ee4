//go:build !linux && !freebsd && !darwin

package memstat

// maxRSS is not available on this platform.
func maxRSS() int64 {
	return 0
}
