package raster

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/plotdraw"
)

// fonts holds the parsed Go fonts. Parsing happens once per process.
var fonts struct {
	once    sync.Once
	regular *text.FontSource
	bold    *text.FontSource
	err     error
}

func loadFonts() {
	fonts.regular, fonts.err = text.NewFontSource(goregular.TTF)
	if fonts.err != nil {
		return
	}
	fonts.bold, fonts.err = text.NewFontSource(gobold.TTF)
}

// fontFace returns a face for style at the given size, or nil when the
// fonts failed to load or size is not positive. Light weights use the
// regular face.
func fontFace(style plotdraw.TextStyle, size float64) text.Face {
	fonts.once.Do(loadFonts)
	if fonts.err != nil {
		plotdraw.Logger().Warn("raster: font load failed", "err", fonts.err)
		return nil
	}
	if !(size > 0) {
		return nil
	}
	if style.FontWeight == plotdraw.FontWeightBold {
		return fonts.bold.Face(size)
	}
	return fonts.regular.Face(size)
}

func measure(s string, face text.Face) (w, h float64) {
	return text.Measure(s, face)
}
