//go:build !darwin && !linux && !windows

package browser

func candidates() []Install {
	return nil
}
