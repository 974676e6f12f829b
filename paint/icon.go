package paint

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/wrapcheck/geom"
	"github.com/gogpu/wrapcheck/internal/cache"
)

// pixmapCacheSize bounds the rendered sizes and modes kept per icon.
const pixmapCacheSize = 8

// IconMode selects how an icon pixmap is rendered.
type IconMode int

const (
	// IconNormal renders the icon as is.
	IconNormal IconMode = iota
	// IconDisabled renders the icon desaturated at half opacity.
	IconDisabled
)

// String returns the string representation of the mode.
func (m IconMode) String() string {
	switch m {
	case IconNormal:
		return "Normal"
	case IconDisabled:
		return "Disabled"
	default:
		return "Unknown"
	}
}

type pixmapKey struct {
	size geom.Size
	mode IconMode
}

// Icon is a source image rendered on demand at the sizes widgets ask for.
// A nil *Icon is the null icon.
type Icon struct {
	src     image.Image
	pixmaps *cache.Cache[pixmapKey, *image.RGBA]
}

// NewIcon creates an icon from img. A nil or empty image gives a null icon.
func NewIcon(img image.Image) *Icon {
	if img == nil || img.Bounds().Empty() {
		return nil
	}
	return &Icon{src: img, pixmaps: cache.New[pixmapKey, *image.RGBA](pixmapCacheSize)}
}

// NewSolidIcon creates a square swatch of color c with a darker one pixel
// border.
func NewSolidIcon(size int, c color.Color) *Icon {
	if size <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Rect, image.NewUniform(c), image.Point{}, draw.Src)

	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	border := color.NRGBA{R: n.R / 2, G: n.G / 2, B: n.B / 2, A: n.A}
	cv := &Canvas{img: img}
	cv.StrokeRect(img.Rect, border)
	return NewIcon(img)
}

// IsNull reports whether ic has no image.
func (ic *Icon) IsNull() bool {
	return ic == nil || ic.src == nil
}

// Size returns the size of the source image.
func (ic *Icon) Size() geom.Size {
	if ic.IsNull() {
		return geom.Size{}
	}
	return geom.SizeOf(ic.src.Bounds())
}

// ActualSize returns the size Pixmap produces for size: the source size
// scaled down to fit, keeping its aspect ratio. Icons are never scaled up.
func (ic *Icon) ActualSize(size geom.Size) geom.Size {
	if ic.IsNull() || size.IsEmpty() {
		return geom.Size{}
	}
	src := ic.Size()
	if src.W <= size.W && src.H <= size.H {
		return src
	}
	// Fit by the tighter dimension.
	if src.W*size.H > src.H*size.W {
		return geom.Sz(size.W, max(1, src.H*size.W/src.W))
	}
	return geom.Sz(max(1, src.W*size.H/src.H), size.H)
}

// Pixmap renders the icon for size in mode. Results are cached per size
// and mode; callers must not modify the returned image. A null icon or an
// empty size yields nil.
func (ic *Icon) Pixmap(size geom.Size, mode IconMode) *image.RGBA {
	actual := ic.ActualSize(size)
	if actual.IsEmpty() {
		return nil
	}
	key := pixmapKey{size: actual, mode: mode}
	return ic.pixmaps.GetOrCreate(key, func() *image.RGBA {
		return ic.render(actual, mode)
	})
}

// render scales the source to size and applies mode.
func (ic *Icon) render(size geom.Size, mode IconMode) *image.RGBA {
	pm := image.NewRGBA(size.Rect(image.Point{}))
	if size == ic.Size() {
		draw.Draw(pm, pm.Rect, ic.src, ic.src.Bounds().Min, draw.Src)
	} else {
		draw.BiLinear.Scale(pm, pm.Rect, ic.src, ic.src.Bounds(), draw.Src, nil)
	}
	if mode == IconDisabled {
		disable(pm)
	}
	return pm
}

// disable desaturates pm in place and halves its opacity.
func disable(pm *image.RGBA) {
	for y := pm.Rect.Min.Y; y < pm.Rect.Max.Y; y++ {
		for x := pm.Rect.Min.X; x < pm.Rect.Max.X; x++ {
			pm.Set(x, y, Desaturate(pm.At(x, y), 0.5))
		}
	}
}
