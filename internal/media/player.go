package media

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/rs/zerolog/log"
)

// progressInterval is how often TimeUpdate is emitted while playing.
const progressInterval = 250 * time.Millisecond

// resampleQuality is the beep resampler quality (1-64). 4 is the usual
// trade-off for real-time playback.
const resampleQuality = 4

// Verify Player implements Session at compile time.
var _ Session = (*Player)(nil)

// Player is a Session over beep. The pipeline for a loaded source is
//
//	decoder -> resampler (rate) -> ctrl (pause) -> tap -> volume -> output
//
// The tap and volume stages live as long as the Player; decoder, resampler
// and ctrl are rebuilt on every Load.
type Player struct {
	mu  sync.Mutex
	out output

	subs subscribers

	gen      uint64
	file     *os.File
	decoded  beep.StreamSeekCloser
	format   beep.Format
	resample *beep.Resampler
	ctrl     *beep.Ctrl
	tap      *tapStreamer
	volume   *effects.Volume

	loaded      bool
	queued      bool // pipeline handed to the output
	playing     bool
	ended       bool
	tapAttached bool
	closed      bool

	rate        float64
	volumeLevel float64
	muted       bool

	stopMonitor chan struct{}
}

// NewPlayer creates a Player on the process audio output.
func NewPlayer() *Player {
	return newPlayer(defaultOutput())
}

func newPlayer(out output) *Player {
	p := &Player{
		out:         out,
		tap:         &tapStreamer{},
		rate:        DefaultRate,
		volumeLevel: 1,
	}
	p.volume = &effects.Volume{Streamer: p.tap, Base: 2}
	return p
}

// Subscribe registers a new event subscriber.
func (p *Player) Subscribe() *Subscription {
	return p.subs.add()
}

// Load replaces the current source. Decoding happens in the background;
// MetadataReady or LoadFailed reports the outcome.
func (p *Player) Load(url string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.gen++
	gen := p.gen
	p.unloadLocked()
	p.rate = DefaultRate
	p.mu.Unlock()

	log.Debug().Uint64("gen", gen).Str("url", url).Msg("media: load")
	go p.open(gen, url)
}

func (p *Player) open(gen uint64, url string) {
	path, err := ResolveSource(url)
	var (
		f        *os.File
		streamer beep.StreamSeekCloser
		format   beep.Format
		info     TrackInfo
	)
	if err == nil {
		f, streamer, format, err = decodeFile(path)
	}
	if err == nil {
		info = ReadTrackInfo(path)
	}

	p.mu.Lock()
	if gen != p.gen || p.closed {
		p.mu.Unlock()
		if streamer != nil {
			streamer.Close()
			f.Close()
		}
		return
	}
	if err != nil {
		p.mu.Unlock()
		log.Debug().Err(err).Uint64("gen", gen).Msg("media: load failed")
		p.subs.emit(LoadFailed{Gen: gen, Err: err})
		return
	}

	p.file = f
	p.decoded = streamer
	p.format = format
	p.loaded = true
	p.buildChainLocked()
	duration := format.SampleRate.D(streamer.Len()).Seconds()
	p.mu.Unlock()

	p.subs.emit(MetadataReady{Gen: gen, Duration: duration, Info: info})
}

// buildChainLocked creates fresh resampler and ctrl stages over the decoder.
func (p *Player) buildChainLocked() {
	p.resample = beep.ResampleRatio(resampleQuality, p.ratioLocked(), p.decoded)
	p.ctrl = &beep.Ctrl{Streamer: p.resample, Paused: true}
	p.out.Lock()
	p.tap.setInner(p.ctrl)
	p.out.Unlock()
}

// ratioLocked is the resampling ratio combining the playback rate with the
// conversion from the source sample rate to the output sample rate.
func (p *Player) ratioLocked() float64 {
	outRate := p.out.SampleRate()
	if outRate == 0 || p.format.SampleRate == 0 {
		return p.rate
	}
	return float64(p.format.SampleRate) / float64(outRate) * p.rate
}

// Play starts or resumes playback in the background. The output is opened on
// first use, which may fail: PlayFailed then reports the reason.
func (p *Player) Play() {
	go p.play()
}

func (p *Player) play() {
	p.mu.Lock()
	gen := p.gen
	if p.closed {
		p.mu.Unlock()
		return
	}
	if !p.loaded {
		p.mu.Unlock()
		p.subs.emit(PlayFailed{Gen: gen, Err: ErrNotLoaded})
		return
	}
	if p.playing {
		p.mu.Unlock()
		p.subs.emit(PlayStarted{Gen: gen})
		return
	}
	if err := p.out.Init(p.format.SampleRate); err != nil {
		p.mu.Unlock()
		log.Debug().Err(err).Msg("media: open output failed")
		p.subs.emit(PlayFailed{Gen: gen, Err: fmt.Errorf("open audio output: %w", err)})
		return
	}

	if !p.queued {
		if p.ended {
			_ = p.decoded.Seek(0)
			p.ended = false
		}
		p.buildChainLocked()
		p.ctrl.Paused = false
		p.out.Play(beep.Seq(p.volume, beep.Callback(func() {
			// Runs on the output goroutine with the output locked.
			go p.finished(gen)
		})))
		p.queued = true
	} else {
		p.out.Lock()
		p.resample.SetRatio(p.ratioLocked())
		p.ctrl.Paused = false
		p.out.Unlock()
	}
	p.playing = true
	p.startMonitorLocked(gen)
	p.mu.Unlock()

	p.subs.emit(PlayStarted{Gen: gen})
}

// finished handles the natural end of the source.
func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || !p.queued {
		p.mu.Unlock()
		return
	}
	p.playing = false
	p.queued = false
	p.ended = true
	p.stopMonitorLocked()
	p.progressLocked(gen, p.durationLocked())
	p.mu.Unlock()

	p.subs.emit(Ended{Gen: gen})
}

// Pause pauses playback and reports the paused position.
func (p *Player) Pause() {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	p.out.Lock()
	p.ctrl.Paused = true
	p.out.Unlock()
	p.playing = false
	p.stopMonitorLocked()
	p.progressLocked(p.gen, p.positionLocked())
	p.mu.Unlock()
}

// Seek moves the read position, clamped to [0, duration].
func (p *Player) Seek(seconds float64) {
	p.mu.Lock()
	if !p.loaded {
		p.mu.Unlock()
		return
	}
	seconds = min(max(seconds, 0), p.durationLocked())
	target := p.format.SampleRate.N(time.Duration(seconds * float64(time.Second)))
	target = min(max(target, 0), p.decoded.Len())

	p.out.Lock()
	err := p.decoded.Seek(target)
	p.out.Unlock()
	if err != nil {
		p.mu.Unlock()
		log.Debug().Err(err).Float64("seconds", seconds).Msg("media: seek failed")
		return
	}
	if seconds < p.durationLocked() {
		p.ended = false
	}
	p.progressLocked(p.gen, seconds)
	p.mu.Unlock()
}

// SetVolume sets the output level in [0, 1]. While muted only the level is
// stored.
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volumeLevel = clampLevel(level)
	p.out.Lock()
	p.volume.Volume = levelToVolume(p.volumeLevel)
	p.out.Unlock()
}

// SetMuted silences the output without changing the stored level.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	p.out.Lock()
	p.volume.Silent = muted
	p.out.Unlock()
}

// SetPlaybackRate changes the playback speed. Pitch follows the speed.
func (p *Player) SetPlaybackRate(rate float64) error {
	if !RateAllowed(rate) {
		return fmt.Errorf("%w: %g", ErrRateNotAllowed, rate)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rate = rate
	if p.resample != nil {
		p.out.Lock()
		p.resample.SetRatio(p.ratioLocked())
		p.out.Unlock()
	}
	return nil
}

// AttachTap connects the analyzer tap. Only one tap may be attached.
func (p *Player) AttachTap(size int) (Tap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid tap size %d", size)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrNotLoaded
	}
	if p.tapAttached {
		return nil, ErrTapAttached
	}
	p.tap.attach(size)
	p.tapAttached = true
	return &tapHandle{tap: p.tap, detach: p.detachTap}, nil
}

func (p *Player) detachTap() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tap.detach()
	p.tapAttached = false
}

// Close stops playback, releases the source and ends all subscriptions.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.gen++
	p.unloadLocked()
	p.mu.Unlock()

	p.subs.closeAll()
	return nil
}

// unloadLocked stops output and releases the current source.
func (p *Player) unloadLocked() {
	p.stopMonitorLocked()
	if p.queued {
		p.out.Clear()
	}
	p.out.Lock()
	p.tap.setInner(nil)
	p.out.Unlock()
	if p.decoded != nil {
		p.decoded.Close()
		p.decoded = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.resample = nil
	p.ctrl = nil
	p.format = beep.Format{}
	p.loaded = false
	p.queued = false
	p.playing = false
	p.ended = false
}

func (p *Player) durationLocked() float64 {
	if p.decoded == nil {
		return 0
	}
	return p.format.SampleRate.D(p.decoded.Len()).Seconds()
}

func (p *Player) positionLocked() float64 {
	if p.decoded == nil {
		return 0
	}
	p.out.Lock()
	pos := p.decoded.Position()
	p.out.Unlock()
	return p.format.SampleRate.D(pos).Seconds()
}

// startMonitorLocked emits TimeUpdate every progressInterval until stopped.
func (p *Player) startMonitorLocked(gen uint64) {
	p.stopMonitorLocked()
	stop := make(chan struct{})
	p.stopMonitor = stop

	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.mu.Lock()
				if gen != p.gen || !p.playing {
					p.mu.Unlock()
					return
				}
				p.progressLocked(gen, p.positionLocked())
				p.mu.Unlock()
			}
		}
	}()
}

// progressLocked emits a TimeUpdate. Emitting with mu held orders every
// position report after the seek or pause that preceded its read.
// TimeUpdate delivery never blocks.
func (p *Player) progressLocked(gen uint64, pos float64) {
	p.subs.emit(TimeUpdate{Gen: gen, Time: pos})
}

func (p *Player) stopMonitorLocked() {
	if p.stopMonitor != nil {
		close(p.stopMonitor)
		p.stopMonitor = nil
	}
}
