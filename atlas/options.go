package atlas

import (
	"image/color"

	"golang.org/x/image/draw"
)

// Option configures an Atlas.
type Option func(*options)

type options struct {
	interp     draw.Interpolator
	background color.NRGBA
}

func defaultOptions() options {
	return options{
		interp: draw.ApproxBiLinear,
	}
}

// WithInterpolator sets the scaler used by EditCell. Pixel art usually
// wants draw.NearestNeighbor; photos look best with draw.CatmullRom.
func WithInterpolator(i draw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interp = i
		}
	}
}

// WithBackground sets the colour Clear fills the atlas with.
// The default is fully transparent.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = color.NRGBAModel.Convert(c).(color.NRGBA)
	}
}
