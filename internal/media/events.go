package media

// Event is a lifecycle notification emitted by a Session.
type Event interface {
	// Generation identifies the Load the event belongs to.
	Generation() uint64
}

// MetadataReady is emitted once the duration of a newly loaded source is known.
type MetadataReady struct {
	Gen      uint64
	Duration float64 // seconds
	Info     TrackInfo
}

// TimeUpdate reports playback progress. Emitted periodically while playing,
// after each seek and when pausing.
type TimeUpdate struct {
	Gen  uint64
	Time float64 // seconds
}

// PlayStarted is emitted when a Play request took effect.
type PlayStarted struct {
	Gen uint64
}

// PlayFailed is emitted when a Play request was rejected.
type PlayFailed struct {
	Gen uint64
	Err error
}

// Ended is emitted when playback reaches the end of the source.
type Ended struct {
	Gen uint64
}

// LoadFailed is emitted when a source cannot be opened or decoded.
type LoadFailed struct {
	Gen uint64
	Err error
}

func (e MetadataReady) Generation() uint64 { return e.Gen }
func (e TimeUpdate) Generation() uint64    { return e.Gen }
func (e PlayStarted) Generation() uint64   { return e.Gen }
func (e PlayFailed) Generation() uint64    { return e.Gen }
func (e Ended) Generation() uint64         { return e.Gen }
func (e LoadFailed) Generation() uint64    { return e.Gen }
