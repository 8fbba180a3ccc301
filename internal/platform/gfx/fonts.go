package gfx

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

// fontSet caches one face per text size.
type fontSet struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[cave.TextSize]*text.GoTextFace
}

func loadFonts() (*fontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &fontSet{
		regular: regular,
		bold:    bold,
		faces:   make(map[cave.TextSize]*text.GoTextFace),
	}, nil
}

// face returns the face for size. Headings and titles use the bold source.
func (f *fontSet) face(size cave.TextSize) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}

	src := f.regular
	if size >= cave.TextHeading {
		src = f.bold
	}
	face := &text.GoTextFace{
		Source: src,
		Size:   float64(size) * fontScale,
	}
	f.faces[size] = face
	return face
}
