package journal

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ErrNotConfigured is recorded in a Reply when no API key is set.
var ErrNotConfigured = errors.New("gemini API not configured")

// ErrEmptyEntry is returned for an entry with no text.
var ErrEmptyEntry = errors.New("journal entry is empty")

// Source tells where a reply came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Reply is the response to one entry. Err records why the remote
// generator was not used; it never prevents a reply.
type Reply struct {
	Text      string
	FollowUps []string
	Source    Source
	Err       error
}

// Service answers journal entries with the remote generator when one is
// configured and falls back to local text otherwise.
type Service struct {
	remote *Gemini
	local  *Fallback
	log    hclog.Logger
}

// NewService creates a service. remote may be nil.
func NewService(remote *Gemini, local *Fallback, logger hclog.Logger) *Service {
	if local == nil {
		local = NewFallback(nil)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{remote: remote, local: local, log: logger}
}

// Remote reports whether a remote generator is configured.
func (s *Service) Remote() bool {
	return s.remote != nil
}

// Respond returns a reply for entry.
func (s *Service) Respond(ctx context.Context, entry string) (Reply, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return Reply{}, ErrEmptyEntry
	}

	if s.remote == nil {
		return s.localReply(entry, ErrNotConfigured), nil
	}

	text, err := s.remote.Response(ctx, entry)
	if err != nil {
		s.log.Warn("remote response failed, using local text", "error", err)
		return s.localReply(entry, err), nil
	}

	qs, err := s.remote.FollowUps(ctx, entry)
	if err != nil || len(qs) == 0 {
		s.log.Debug("remote follow-ups unavailable", "error", err)
		qs = slices.Clone(DefaultQuestions[:maxLocalFollowUps])
	}
	return Reply{Text: text, FollowUps: qs, Source: SourceRemote}, nil
}

func (s *Service) localReply(entry string, cause error) Reply {
	a := Analyze(entry)
	s.log.Debug("local analysis",
		"emotions", a.Emotions,
		"themes", a.Themes,
		"intensity", a.Intensity.String(),
		"needs_support", a.NeedsSupport,
	)
	return Reply{
		Text:      s.local.Response(a),
		FollowUps: s.local.FollowUps(a),
		Source:    SourceLocal,
		Err:       cause,
	}
}
