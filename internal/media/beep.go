package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/hashicorp/go-hclog"
)

// DefaultTickInterval is how often time updates fire while playing.
const DefaultTickInterval = 250 * time.Millisecond

// Options configures a Beep element.
type Options struct {
	Client       *http.Client
	Sink         Sink
	Logger       hclog.Logger
	TickInterval time.Duration
}

// Beep is an Element that buffers the resource in memory, decodes it with
// beep and plays it through a Sink.
type Beep struct {
	events Emitter
	client *http.Client
	sink   Sink
	log    hclog.Logger
	tick   time.Duration

	mu       sync.Mutex
	src      string
	gen      uint64
	cancel   context.CancelFunc
	ready    ReadyState
	track    *track
	paused   bool
	level    float64
	stopTick chan struct{}
}

type track struct {
	stream beep.StreamSeekCloser
	format beep.Format
	info   *TrackInfo
	ctrl   *beep.Ctrl
	vol    *effects.Volume
	queued bool // handed to the sink and not finished yet
}

// NewBeep creates an element. Zero options fall back to the beep speaker,
// a plain HTTP client and a null logger.
func NewBeep(opts Options) *Beep {
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	if opts.Sink == nil {
		opts.Sink = Speaker()
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	return &Beep{
		client: opts.Client,
		sink:   opts.Sink,
		log:    opts.Logger,
		tick:   opts.TickInterval,
		paused: true,
		level:  1,
	}
}

var (
	_ Element      = (*Beep)(nil)
	_ InfoProvider = (*Beep)(nil)
)

func (b *Beep) SetSource(src string) {
	b.mu.Lock()
	b.src = src
	b.mu.Unlock()
}

func (b *Beep) Source() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.src
}

func (b *Beep) Load() uint64 {
	b.mu.Lock()
	b.resetLocked()
	b.gen++
	gen, src := b.gen, b.src
	if src == "" {
		b.mu.Unlock()
		return gen
	}
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.mu.Unlock()

	b.emit(EventLoadStart, gen, src, nil)
	go b.load(ctx, gen, src)
	return gen
}

func (b *Beep) load(ctx context.Context, gen uint64, src string) {
	data, contentType, err := fetch(ctx, b.client, src)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		b.fail(gen, src, &Error{Code: CodeNetwork, Err: err})
		return
	}

	format := detectFormat(src, contentType, data)
	stream, f, err := decode(data, format, b.log.With("src", src))
	if err != nil {
		code := CodeDecode
		if errors.Is(err, ErrUnsupportedFormat) {
			code = CodeSrcNotSupported
		}
		b.fail(gen, src, &Error{Code: code, Err: err})
		return
	}
	info := readTrackInfo(data, format)

	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		stream.Close()
		return
	}
	b.track = &track{stream: stream, format: f, info: info}
	// The whole resource is in memory, so it can play through at once.
	b.ready = HaveEnoughData
	b.mu.Unlock()

	b.log.Debug("resource ready",
		"src", src,
		"format", format,
		"size", humanize.IBytes(uint64(len(data))),
		"duration", f.SampleRate.D(stream.Len()),
	)

	b.emit(EventLoadedMetadata, gen, src, nil)
	b.emit(EventLoadedData, gen, src, nil)
	b.emit(EventCanPlayThrough, gen, src, nil)
}

func (b *Beep) fail(gen uint64, src string, err *Error) {
	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		return
	}
	b.ready = HaveNothing
	b.mu.Unlock()

	b.log.Warn("resource failed", "src", src, "error", err)
	b.emit(EventError, gen, src, err)
}

func (b *Beep) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrAborted, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.track
	if t == nil {
		return fmt.Errorf("%w: nothing loaded", ErrNotSupported)
	}
	if !b.paused {
		return nil
	}

	if t.ctrl == nil {
		if err := b.sink.Init(t.format.SampleRate); err != nil {
			return fmt.Errorf("%w: open audio output: %w", ErrNotAllowed, err)
		}
		var s beep.Streamer = t.stream
		if rate := b.sink.SampleRate(); rate != t.format.SampleRate {
			s = beep.Resample(4, t.format.SampleRate, rate, t.stream)
		}
		t.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
		t.vol = &effects.Volume{
			Streamer: t.ctrl,
			Base:     2,
			Volume:   levelToVolume(b.level),
			Silent:   b.level <= 0,
		}
	}

	if !t.queued {
		gen, src := b.gen, b.src
		// The callback runs with the sink locked; finish on another goroutine.
		b.sink.Play(beep.Seq(t.vol, beep.Callback(func() {
			go b.ended(gen, src)
		})))
		t.queued = true
	}

	b.sink.Lock()
	t.ctrl.Paused = false
	b.sink.Unlock()

	b.paused = false
	b.startTickerLocked()
	return nil
}

func (b *Beep) ended(gen uint64, src string) {
	b.mu.Lock()
	if gen != b.gen || b.track == nil {
		b.mu.Unlock()
		return
	}
	b.track.queued = false
	b.paused = true
	b.stopTickerLocked()
	b.mu.Unlock()

	b.emit(EventEnded, gen, src, nil)
}

func (b *Beep) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.track
	if t == nil || b.paused {
		return
	}
	if t.ctrl != nil {
		b.sink.Lock()
		t.ctrl.Paused = true
		b.sink.Unlock()
	}
	b.paused = true
	b.stopTickerLocked()
}

func (b *Beep) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.paused
}

func (b *Beep) CurrentTime() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	t := b.track
	if t == nil {
		return 0
	}
	var pos int
	if t.queued {
		b.sink.Lock()
		pos = t.stream.Position()
		b.sink.Unlock()
	} else {
		pos = t.stream.Position()
	}
	return t.format.SampleRate.D(pos)
}

func (b *Beep) SetCurrentTime(d time.Duration) {
	b.mu.Lock()
	t := b.track
	if t == nil {
		b.mu.Unlock()
		return
	}
	n := max(0, min(t.format.SampleRate.N(d), t.stream.Len()))

	var err error
	if t.queued {
		b.sink.Lock()
		err = t.stream.Seek(n)
		b.sink.Unlock()
	} else {
		err = t.stream.Seek(n)
	}
	gen, src := b.gen, b.src
	b.mu.Unlock()

	if err != nil {
		b.log.Warn("seek failed", "src", src, "position", d, "error", err)
	}
	b.emit(EventTimeUpdate, gen, src, nil)
}

func (b *Beep) Duration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.track == nil {
		return 0
	}
	return b.track.format.SampleRate.D(b.track.stream.Len())
}

func (b *Beep) Volume() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

func (b *Beep) SetVolume(level float64) {
	level = clampLevel(level)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.level = level
	if b.track != nil && b.track.vol != nil {
		b.sink.Lock()
		b.track.vol.Volume = levelToVolume(level)
		b.track.vol.Silent = level <= 0
		b.sink.Unlock()
	}
}

func (b *Beep) ReadyState() ReadyState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

func (b *Beep) AddListener(kind EventKind, fn func(Event)) func() {
	return b.events.AddListener(kind, fn)
}

func (b *Beep) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.resetLocked()
	b.gen++
	b.src = ""
}

// TrackInfo returns a copy of the loaded resource's tags, nil if nothing
// is loaded.
func (b *Beep) TrackInfo() *TrackInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.track == nil || b.track.info == nil {
		return nil
	}
	info := *b.track.info
	return &info
}

// resetLocked cancels any fetch and drops the decoded track.
func (b *Beep) resetLocked() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.stopTickerLocked()
	if t := b.track; t != nil {
		if t.queued {
			b.sink.Clear()
		}
		if err := t.stream.Close(); err != nil {
			b.log.Debug("close stream", "error", err)
		}
		b.track = nil
	}
	b.ready = HaveNothing
	b.paused = true
}

func (b *Beep) startTickerLocked() {
	b.stopTickerLocked()

	stop := make(chan struct{})
	b.stopTick = stop
	gen, src, interval := b.gen, b.src, b.tick

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				b.emit(EventTimeUpdate, gen, src, nil)
			}
		}
	}()
}

func (b *Beep) stopTickerLocked() {
	if b.stopTick != nil {
		close(b.stopTick)
		b.stopTick = nil
	}
}

func (b *Beep) emit(kind EventKind, gen uint64, src string, err *Error) {
	b.events.Emit(Event{Kind: kind, Src: src, Load: gen, Err: err})
}
