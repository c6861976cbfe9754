package mpris

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/media"
)

// coverNames lists artwork filenames looked for next to a local audio file.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png",
}

// artURL returns the meditation's image, or artwork found beside its local
// audio file.
func artURL(m catalog.Meditation) string {
	if m.ImageURL != "" {
		return m.ImageURL
	}
	if m.AudioURL == "" || media.IsRemote(m.AudioURL) {
		return ""
	}
	if art := findCover(media.LocalPath(m.AudioURL)); art != "" {
		return (&url.URL{Scheme: "file", Path: art}).String()
	}
	return ""
}

// findCover looks for artwork in the same directory as audioPath.
func findCover(audioPath string) string {
	dir := filepath.Dir(audioPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
