package wave

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/youpy/go-wav"
)

// ImportWaveform reads a mono PCM WAV holding exactly one cycle of a periodic
// signal and returns it as a Shape. Sample integers are normalized against
// the 16-bit maximum magnitude, so sources with other bit depths import at a
// different scale. The returned Shape wraps phase into [0,1) and indexes the
// nearest sample.
func ImportWaveform(r io.Reader) (Shape, error) {
	// wav.NewReader needs an io.ReaderAt; buffer the stream to provide one.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read wav: %w", err)
	}
	reader := wav.NewReader(bytes.NewReader(data))
	format, err := reader.Format()
	if err != nil {
		return nil, fmt.Errorf("read wav format: %w", err)
	}
	if format.NumChannels != 1 {
		return nil, fmt.Errorf("%d channels: %w", format.NumChannels, ErrNotMono)
	}
	var cycle []float64
	for {
		samples, err := reader.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read wav samples: %w", err)
		}
		for _, s := range samples {
			cycle = append(cycle, float64(reader.IntValue(s, 0))/32767)
		}
	}
	if len(cycle) == 0 {
		return nil, fmt.Errorf("empty wav: %w", ErrInvalidArgument)
	}
	n := len(cycle)
	return func(phase float64) float64 {
		return cycle[int(wrap(phase)*float64(n))%n]
	}, nil
}

func ImportWaveformFile(path string) (Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImportWaveform(f)
}

// EncodeWAV writes w as 16-bit mono PCM at its sample rate. The buffer is
// normalized by 1/Significance first; w itself is left unmodified. Samples
// outside unit range after normalization are not clipped.
func (w *Wave) EncodeWAV(out io.Writer) error {
	norm := w.Multiply(1 / float64(w.Significance))
	samples := make([]wav.Sample, len(norm.Samples))
	for i, s := range norm.Samples {
		samples[i].Values[0] = int(s * math.MaxInt16)
	}
	writer := wav.NewWriter(out, uint32(len(samples)), 1, uint32(w.SampleRate), 16)
	if err := writer.WriteSamples(samples); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}

func (w *Wave) ExportWAV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := w.EncodeWAV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
