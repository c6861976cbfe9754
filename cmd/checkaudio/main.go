// Command checkaudio reports which catalog meditations have reachable audio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/serein/internal/audio"
	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/config"
	"github.com/llehouerou/serein/internal/errmsg"
	"github.com/llehouerou/serein/internal/logging"
	"github.com/llehouerou/serein/internal/media"
)

func main() {
	base := flag.String("base", "", "audio base directory or URL (default: from config)")
	verbose := flag.Bool("v", false, "log probe failures to stderr")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}
	audioCfg := cfg.GetAudioConfig()
	if *base != "" {
		audioCfg.Base = *base
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err == nil {
		cat, err = cat.ResolveAudio(audioCfg.Base)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpCatalogLoad, err))
		os.Exit(1)
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger := logging.NewWithWriter(level, os.Stderr)
	mgr := audio.New(media.NewBeep(media.Options{Logger: logger}), audio.Options{
		Logger:       logger,
		ProbeTimeout: audioCfg.ProbeTimeout,
	})
	os.Exit(report(mgr, cat, audioCfg.Base))
}

// report prints one row per meditation and returns the exit code.
func report(mgr *audio.Manager, cat *catalog.Catalog, base string) int {
	defer mgr.Destroy()

	fmt.Printf("audio base: %s\n\n", base)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tSIZE")
	missing := 0
	for _, m := range cat.Meditations {
		status, size := check(mgr, m)
		if status == "missing" {
			missing++
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Title, status, size)
	}
	w.Flush()

	if missing > 0 {
		fmt.Printf("\n%d of %d meditations have no reachable audio\n", missing, len(cat.Meditations))
		return 2
	}
	return 0
}

func check(mgr *audio.Manager, m catalog.Meditation) (status, size string) {
	if !m.HasAudio() {
		return "script only", "-"
	}
	if !mgr.CheckResourceExists(context.Background(), m.AudioURL) {
		return "missing", "-"
	}
	if media.IsRemote(m.AudioURL) {
		return "ok", "remote"
	}
	info, err := os.Stat(media.LocalPath(m.AudioURL))
	if err != nil {
		return "ok", "?"
	}
	return "ok", humanize.Bytes(uint64(info.Size()))
}
