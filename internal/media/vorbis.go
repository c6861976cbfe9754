package media

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/vorbis"
)

var errOggPage = errors.New("ogg: malformed page")

// oggPacket is one packet of the first logical stream. granule is the
// position of the page the packet ends on when it is the last packet to
// end there, -1 otherwise.
type oggPacket struct {
	data    []byte
	granule int64
}

// demuxOgg splits a buffered Ogg file into the packets of its first
// logical stream. Other multiplexed streams are skipped.
func demuxOgg(data []byte) ([]oggPacket, error) {
	var (
		packets []oggPacket
		partial []byte
		serial  uint32
		first   = true
	)
	for off := 0; off < len(data); {
		if len(data)-off < 27 || string(data[off:off+4]) != "OggS" || data[off+4] != 0 {
			return nil, fmt.Errorf("%w at offset %d", errOggPage, off)
		}
		hdr := data[off : off+27]
		granule := int64(binary.LittleEndian.Uint64(hdr[6:14]))
		pageSerial := binary.LittleEndian.Uint32(hdr[14:18])
		nseg := int(hdr[26])
		if len(data)-off < 27+nseg {
			return nil, fmt.Errorf("%w at offset %d", errOggPage, off)
		}
		lacing := data[off+27 : off+27+nseg]
		body := off + 27 + nseg
		size := 0
		for _, l := range lacing {
			size += int(l)
		}
		if len(data)-body < size {
			return nil, fmt.Errorf("%w at offset %d", errOggPage, off)
		}
		off = body + size

		if first {
			serial, first = pageSerial, false
		}
		if pageSerial != serial {
			continue
		}

		ended := -1
		pos := body
		for _, l := range lacing {
			partial = append(partial, data[pos:pos+int(l)]...)
			pos += int(l)
			if l < 255 {
				packets = append(packets, oggPacket{data: partial, granule: -1})
				partial = nil
				ended = len(packets) - 1
			}
		}
		if ended >= 0 {
			packets[ended].granule = granule
		}
	}
	return packets, nil
}

// vorbisStream decodes an in-memory Ogg Vorbis file. Seeking restarts the
// decoder on the nearest page boundary before the target and discards
// samples up to it.
type vorbisStream struct {
	dec      vorbis.Decoder
	packets  []oggPacket // audio packets only
	channels int
	length   int

	next int       // index of the next packet to decode
	pcm  []float32 // decoded interleaved samples not streamed yet
	pos  int
	err  error
}

func decodeVorbis(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	packets, err := demuxOgg(data)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if len(packets) < 3 {
		return nil, beep.Format{}, fmt.Errorf("%w: ogg stream has no vorbis headers", ErrUnsupportedFormat)
	}
	ident := packets[0].data
	if len(ident) < 16 || ident[0] != 0x01 || string(ident[1:7]) != "vorbis" {
		// Opus and other Ogg codecs are not decoded.
		return nil, beep.Format{}, fmt.Errorf("%w: ogg stream is not vorbis", ErrUnsupportedFormat)
	}

	s := &vorbisStream{
		packets:  packets[3:],
		channels: int(ident[11]),
	}
	for _, p := range packets[:3] {
		if err := s.dec.ReadHeader(p.data); err != nil {
			return nil, beep.Format{}, err
		}
	}
	if s.channels < 1 {
		return nil, beep.Format{}, errors.New("vorbis: no channels")
	}
	for i := len(s.packets) - 1; i >= 0; i-- {
		if g := s.packets[i].granule; g >= 0 {
			s.length = int(g)
			break
		}
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(binary.LittleEndian.Uint32(ident[12:16])),
		NumChannels: min(s.channels, 2),
		Precision:   2,
	}
	return s, format, nil
}

func (s *vorbisStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}
	for n < len(samples) {
		if len(s.pcm) == 0 {
			if !s.decodeNext() {
				return n, n > 0
			}
			continue
		}
		samples[n][0] = float64(s.pcm[0])
		if s.channels > 1 {
			samples[n][1] = float64(s.pcm[1])
		} else {
			samples[n][1] = samples[n][0]
		}
		s.pcm = s.pcm[s.channels:]
		s.pos++
		n++
	}
	return n, true
}

// decodeNext refills pcm from the next packet. It returns false at the end
// of the stream. Corrupt packets are skipped.
func (s *vorbisStream) decodeNext() bool {
	for s.next < len(s.packets) {
		out, err := s.dec.Decode(s.packets[s.next].data)
		s.next++
		if err != nil {
			continue
		}
		s.pcm = out[:len(out)-len(out)%s.channels]
		return true
	}
	return false
}

func (s *vorbisStream) Err() error { return s.err }

func (s *vorbisStream) Len() int { return s.length }

func (s *vorbisStream) Position() int { return s.pos }

func (s *vorbisStream) Seek(p int) error {
	p = min(max(p, 0), s.length)

	// The packet ending at the chosen granule only primes the decoder; the
	// next one yields samples starting at that granule.
	start, at := -1, 0
	for i, pk := range s.packets {
		if pk.granule < 0 {
			continue
		}
		if int(pk.granule) > p {
			break
		}
		start, at = i, int(pk.granule)
	}

	s.dec.Clear()
	s.pcm = nil
	s.err = nil
	s.next, s.pos = 0, 0
	if start >= 0 {
		_, _ = s.dec.Decode(s.packets[start].data)
		s.next, s.pos = start+1, at
	}

	for s.pos < p {
		if len(s.pcm) == 0 && !s.decodeNext() {
			break
		}
		skip := min(p-s.pos, len(s.pcm)/s.channels)
		s.pcm = s.pcm[skip*s.channels:]
		s.pos += skip
	}
	return nil
}

func (s *vorbisStream) Close() error { return nil }
