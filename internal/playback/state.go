package playback

import (
	"time"

	"github.com/llehouerou/serein/internal/audio"
)

// State is the playback snapshot the presentation layer renders.
type State struct {
	ID          string
	IsLoading   bool
	IsPlaying   bool
	Progress    float64 // percent, always within [0, 100]
	CurrentTime time.Duration
	Duration    time.Duration
	Volume      float64
	Error       string
	ErrorKind   audio.Kind
}

// HasError reports whether an error message should be shown.
func (s State) HasError() bool {
	return s.Error != ""
}

// Loaded reports whether a resource is ready for transport controls.
func (s State) Loaded() bool {
	return s.ID != "" && !s.IsLoading && s.Error == ""
}

func (s *State) setError(err error) {
	s.Error = err.Error()
	s.ErrorKind = audio.KindOf(err)
}

func (s *State) clearError() {
	s.Error = ""
	s.ErrorKind = audio.KindUnknown
}
