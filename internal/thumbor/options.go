package thumbor

const (
	// UnsafeToken is emitted in place of a signature for unsigned URLs.
	UnsafeToken = "unsafe"

	segmentTrim    = "trim"
	segmentFitIn   = "fit-in"
	segmentSmart   = "smart"
	segmentFilters = "filters:"
)

// TrimSource selects the pixel whose colour defines the border to trim.
type TrimSource string

const (
	TrimTopLeft     TrimSource = "top-left"
	TrimBottomRight TrimSource = "bottom-right"
)

// HorizontalAlign positions the crop or fit window horizontally.
type HorizontalAlign string

const (
	AlignLeft   HorizontalAlign = "left"
	AlignCenter HorizontalAlign = "center"
	AlignRight  HorizontalAlign = "right"
)

// VerticalAlign positions the crop or fit window vertically.
type VerticalAlign string

const (
	AlignTop    VerticalAlign = "top"
	AlignMiddle VerticalAlign = "middle"
	AlignBottom VerticalAlign = "bottom"
)

// Size is the requested output size. A zero axis is left to the server,
// which preserves the aspect ratio.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Point is a pixel coordinate in the source image.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Crop is a manual crop rectangle in source pixel coordinates.
type Crop struct {
	TopLeft     Point `json:"top_left" yaml:"top_left"`
	BottomRight Point `json:"bottom_right" yaml:"bottom_right"`
}

// Filter is a named post-processing step. Args are strings or numbers and
// are rendered without escaping.
type Filter struct {
	Name string        `json:"name" yaml:"name"`
	Args []interface{} `json:"args,omitempty" yaml:"args,omitempty"`
}

// Options describes one transformation request.
//
// Every field except Size is optional, and its zero value means "omit the
// segment". Size is always emitted, as "0x0" if left zero.
type Options struct {
	AuthToken       string          `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`
	Size            Size            `json:"size" yaml:"size"`
	Trim            bool            `json:"trim,omitempty" yaml:"trim,omitempty"`
	TrimSource      TrimSource      `json:"trim_source,omitempty" yaml:"trim_source,omitempty"`
	Crop            *Crop           `json:"crop,omitempty" yaml:"crop,omitempty"`
	FitIn           bool            `json:"fit_in,omitempty" yaml:"fit_in,omitempty"`
	HorizontalAlign HorizontalAlign `json:"horizontal_align,omitempty" yaml:"horizontal_align,omitempty"`
	VerticalAlign   VerticalAlign   `json:"vertical_align,omitempty" yaml:"vertical_align,omitempty"`
	SmartCrop       bool            `json:"smart_crop,omitempty" yaml:"smart_crop,omitempty"`
	Filters         []Filter        `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// WithWidth returns a copy of o sized for a responsive breakpoint: the given
// width and an unconstrained height.
func (o Options) WithWidth(width int) Options {
	o.Size = Size{Width: width, Height: 0}
	return o
}
