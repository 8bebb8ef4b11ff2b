//go:build !cgo

package sound

// The speaker backend links the system audio library through cgo, so
// CGO_ENABLED=0 builds stay silent.
func openSpeaker() (Player, error) {
	return nil, ErrNoSpeaker
}
