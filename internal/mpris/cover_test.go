package mpris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/serein/internal/catalog"
)

func TestArtURL_PrefersImage(t *testing.T) {
	m := catalog.Meditation{ImageURL: "https://images.example/calm.jpg", AudioURL: "/tmp/calm.mp3"}
	if got := artURL(m); got != m.ImageURL {
		t.Errorf("artURL() = %q, want %q", got, m.ImageURL)
	}
}

func TestArtURL_CoverBesideAudio(t *testing.T) {
	dir := t.TempDir()
	coverPath := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(coverPath, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := artURL(catalog.Meditation{AudioURL: filepath.Join(dir, "Breathe.mp3")})
	if want := "file://" + coverPath; got != want {
		t.Errorf("artURL() = %q, want %q", got, want)
	}
}

func TestArtURL_NoArtwork(t *testing.T) {
	tests := []struct {
		name string
		m    catalog.Meditation
	}{
		{"no audio", catalog.Meditation{}},
		{"remote audio", catalog.Meditation{AudioURL: "https://cdn.example/calm.mp3"}},
		{"no cover file", catalog.Meditation{AudioURL: filepath.Join(t.TempDir(), "calm.mp3")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artURL(tt.m); got != "" {
				t.Errorf("artURL() = %q, want empty", got)
			}
		})
	}
}
