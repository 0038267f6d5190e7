package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/blockfall/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws a centered line of text. The text may be replaced while the object is live.
type TextOverlayObject struct {
	*BaseObject

	text    string
	offsetY float64
	face    font.Face
	clr     color.Color
}

type NewTextOverlayObjectOptions struct {
	// OffsetY moves the text down from the vertical center of the screen.
	OffsetY float64
	// Face defaults to the large font.
	Face font.Face
	// Color defaults to white.
	Color color.Color
	// ZIndex is the z-index of the overlay.
	ZIndex int
}

func NewTextOverlayObject(id string, text string, opts *NewTextOverlayObjectOptions) *TextOverlayObject {
	o := &TextOverlayObject{
		text: text,
		face: fonts.TTFLargeFont,
		clr:  color.White,
	}
	var zIndex int
	if opts != nil {
		o.offsetY = opts.OffsetY
		if opts.Face != nil {
			o.face = opts.Face
		}
		if opts.Color != nil {
			o.clr = opts.Color
		}
		zIndex = opts.ZIndex
	}
	o.BaseObject = NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex})
	return o
}

func (o *TextOverlayObject) SetText(text string) {
	o.text = text
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	t := strings.ToUpper(o.text)
	bounds, _ := font.BoundString(o.face, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(
		float64(screen.Bounds().Dx())/2-float64((bounds.Max.X-bounds.Min.X)>>6)/2,
		float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2+o.offsetY,
	)
	op.ColorScale.ScaleWithColor(o.clr)
	text.DrawWithOptions(screen, t, o.face, op)
}
