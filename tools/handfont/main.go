// seehuhn.de/go/handfont - turn hand-drawn glyphs into fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"seehuhn.de/go/handfont"
	"seehuhn.de/go/handfont/fontmodel"
	"seehuhn.de/go/handfont/session"
	"seehuhn.de/go/handfont/sfntenc"
	"seehuhn.de/go/handfont/stroke"
	"seehuhn.de/go/handfont/tools/internal/buildinfo"
	"seehuhn.de/go/handfont/tools/internal/profile"
)

var (
	nameArg       = flag.String("name", fontmodel.DefaultFamily, "font family `name`")
	outArg        = flag.String("o", "", "output `file` (default <name>.otf)")
	previewArg    = flag.String("preview", "", "render a preview of `text`")
	previewOutArg = flag.String("preview-out", "preview.png", "write the preview image to `file`")
	stepArg       = flag.Int("step", stroke.DefaultStep, "sampling grid spacing in pixels")
	thresholdArg  = flag.Float64("threshold", stroke.DefaultThreshold, "maximal distance between neighbouring stroke points")
	capArg        = flag.Int("cap", stroke.DefaultCap, "maximal number of points per stroke")
	listArg       = flag.Bool("list", false, "list the character set and exit")
	verboseArg    = flag.Bool("v", false, "print debug messages")
	cpuprofile    = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile    = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "handfont \u2014 turn hand-drawn glyphs into a font\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("handfont"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  handfont [options] <dir>\n")
		fmt.Fprintf(os.Stderr, "  handfont -list\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  dir   directory with one image per character, named after the\n")
		fmt.Fprintf(os.Stderr, "        character (A.png), its code point (U+0041.png) or its\n")
		fmt.Fprintf(os.Stderr, "        glyph name (slash.png)\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  handfont -name MyHand drawings/\n")
		fmt.Fprintf(os.Stderr, "  handfont -preview \"Hello World\" drawings/\n")
	}
	flag.Parse()

	if *listArg {
		if err := listCharacters(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dir string) (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	level := slog.LevelWarn
	if *verboseArg {
		level = slog.LevelDebug
	}
	handfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	s, err := loadSession(dir, &stroke.Options{
		Step:      *stepArg,
		Threshold: *thresholdArg,
		Cap:       *capArg,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s characters drawn\n", s.Progress())

	if *previewArg != "" {
		err = writePreview(s, *previewArg, *previewOutArg)
		if err != nil {
			return err
		}
	}

	out := *outArg
	if out == "" {
		out = sfntenc.FileName(&fontmodel.Font{FamilyName: *nameArg})
	}
	p := newProgress(os.Stderr, "assembling glyphs")
	data, err := s.Export(ctx, *nameArg, &sfntenc.Encoder{}, p.Update)
	p.Done()
	if err != nil {
		return err
	}
	err = os.WriteFile(out, data, 0o644)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d glyphs, %d bytes)\n", out, s.Store().Size(), len(data))
	return nil
}

// loadSession creates a session which holds the drawings from dir.
// The first image fixes the size of the drawing surface.
func loadSession(dir string, extract *stroke.Options) (*session.Session, error) {
	drawings, err := findDrawings(dir)
	if err != nil {
		return nil, err
	}
	if len(drawings) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, errNoDrawings)
	}

	log := handfont.Logger()
	var s *session.Session
	var size image.Point
	for _, d := range drawings {
		img, err := loadImage(d.Path)
		if err != nil {
			return nil, err
		}
		if s == nil {
			size = img.Bounds().Size()
			s = session.New(&session.Options{
				Width:    size.X,
				Height:   size.Y,
				Assemble: &fontmodel.Options{Extract: extract},
			})
		} else if got := img.Bounds().Size(); got != size {
			return nil, fmt.Errorf("%s: %w", d.Path,
				&handfont.SizeMismatchError{Want: size, Got: got})
		}

		err = s.Select(d.Char)
		if err != nil {
			return nil, err
		}
		surf := s.Surface()
		surf.Paste(img)
		err = s.Save()
		if errors.Is(err, handfont.ErrEmptyCanvas) {
			log.Warn("blank drawing skipped", "file", d.Path, "char", string(d.Char))
		} else if err != nil {
			return nil, err
		}
		surf.Clear()
	}
	return s, nil
}

func writePreview(s *session.Session, text, fname string) error {
	res := s.Preview(text)
	if !res.HasImage() {
		handfont.Logger().Warn("no preview written", "reason", res.Message)
		return nil
	}
	if res.Truncated {
		handfont.Logger().Warn("preview text truncated", "shown", len(res.Cells))
	}

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(fd, res.Image)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// progress reports the progress of a long-running operation.  On a
// terminal, the status line is updated in place.  Otherwise only the final
// state is printed.
type progress struct {
	w        io.Writer
	label    string
	terminal bool
	last     handfont.Progress
}

func newProgress(f *os.File, label string) *progress {
	return &progress{
		w:        f,
		label:    label,
		terminal: term.IsTerminal(int(f.Fd())),
	}
}

func (p *progress) Update(done, total int) {
	p.last = handfont.Progress{Completed: done, Total: total}
	if p.terminal {
		fmt.Fprintf(p.w, "\r%s %s ", p.label, p.last)
	}
}

func (p *progress) Done() {
	if p.last.Total == 0 {
		return
	}
	if p.terminal {
		fmt.Fprintln(p.w)
	} else {
		fmt.Fprintf(p.w, "%s %s\n", p.label, p.last)
	}
}
