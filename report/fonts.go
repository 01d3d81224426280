package report

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ============================================================================
// FONTS — Embedded Go typefaces for figure text
// ============================================================================

type faceSet struct {
	title    font.Face // bold, wrapped question heading
	caption  font.Face // bold, walkthrough panel caption
	subtitle font.Face // chart headings
	note     font.Face // small annotations under chart headings
	mono     font.Face // walkthrough arithmetic lines
}

var (
	facesOnce sync.Once
	facesVal  *faceSet
	facesErr  error
)

// faces parses the embedded Go fonts once; every figure reuses the set.
func faces() (*faceSet, error) {
	facesOnce.Do(func() {
		facesVal, facesErr = loadFaces()
	})
	return facesVal, facesErr
}

func loadFaces() (*faceSet, error) {
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mono font: %w", err)
	}

	fs := &faceSet{}
	if fs.title, err = newFace(bold, 28); err != nil {
		return nil, err
	}
	if fs.caption, err = newFace(bold, 22); err != nil {
		return nil, err
	}
	if fs.subtitle, err = newFace(regular, 20); err != nil {
		return nil, err
	}
	if fs.note, err = newFace(regular, 16); err != nil {
		return nil, err
	}
	if fs.mono, err = newFace(mono, 16); err != nil {
		return nil, err
	}
	return fs, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %gpt face: %w", size, err)
	}
	return face, nil
}
