package media

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/llehouerou/go-mp3"
)

// mp3FrameBytes is one stereo frame of the 16-bit PCM go-mp3 produces.
const mp3FrameBytes = 4

// mp3Decoder is the part of *mp3.Decoder the stream uses.
type mp3Decoder interface {
	io.Reader
	SampleCount() int64
	SamplePosition() int64
	SeekToSample(sample int64) error
}

// mp3Stream plays a buffered MP3. A decode error ends the stream; it is
// logged once and kept for Err until the next seek.
type mp3Stream struct {
	dec mp3Decoder
	log hclog.Logger
	pcm []byte
	err error
}

func decodeMP3(data []byte, log hclog.Logger) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("mp3: %w", err)
	}
	rate := dec.SampleRate()
	if rate <= 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(rate),
		NumChannels: 2,
		Precision:   2,
	}
	return newMP3Stream(dec, log), format, nil
}

func newMP3Stream(dec mp3Decoder, log hclog.Logger) *mp3Stream {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &mp3Stream{dec: dec, log: log}
}

func (s *mp3Stream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}

	want := len(samples) * mp3FrameBytes
	if cap(s.pcm) < want {
		s.pcm = make([]byte, want)
	}
	got, err := io.ReadFull(s.dec, s.pcm[:want])

	n = min(got/mp3FrameBytes, len(samples))
	for i := range n {
		frame := s.pcm[i*mp3FrameBytes : (i+1)*mp3FrameBytes]
		samples[i][0] = pcm16(frame[0:2])
		samples[i][1] = pcm16(frame[2:4])
	}

	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		s.log.Warn("mp3 decode stopped", "sample", s.dec.SamplePosition(), "of", s.Len(), "error", err)
	}
	return n, n > 0
}

// pcm16 converts one little-endian signed 16-bit sample to [-1, 1).
func pcm16(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b))) / 32768 //nolint:gosec // two's complement sample
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int { return int(max(s.dec.SampleCount(), 0)) }

func (s *mp3Stream) Position() int { return int(s.dec.SamplePosition()) }

func (s *mp3Stream) Seek(p int) error {
	p = min(max(p, 0), s.Len())
	if err := s.dec.SeekToSample(int64(p)); err != nil {
		return fmt.Errorf("mp3 seek to sample %d: %w", p, err)
	}
	s.err = nil
	return nil
}

func (s *mp3Stream) Close() error { return nil }
