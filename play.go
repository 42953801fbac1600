//go:build cgo

package wave

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Play streams the buffer, normalized by 1/Significance, to the default
// output device and returns once the whole buffer has been delivered. It
// blocks with no cancellation; callers wanting that must wrap it. w is left
// unmodified.
func (w *Wave) Play() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	norm := w.Multiply(1 / float64(w.Significance))
	done := make(chan struct{}, 1)
	i := 0
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(w.SampleRate), 1024, func(out []float32) {
		for j := range out {
			if i < len(norm.Samples) {
				out[j] = float32(norm.Samples[i])
				i++
			} else {
				out[j] = 0
			}
		}
		if i == len(norm.Samples) {
			select {
			case done <- struct{}{}:
			default:
			}
		}
	})
	if err != nil {
		return fmt.Errorf("open output stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return fmt.Errorf("start output stream: %w", err)
	}
	<-done
	if err := stream.Stop(); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}
