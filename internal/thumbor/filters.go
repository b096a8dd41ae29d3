package thumbor

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Quality sets the JPEG/WebP output quality (0-100).
func Quality(n int) Filter { return newFilter("quality", n) }

// Format forces the output format, e.g. "webp" or "jpeg".
func Format(f string) Filter { return newFilter("format", f) }

// Blur applies a gaussian blur with the given radius.
func Blur(radius int) Filter { return newFilter("blur", radius) }

// Brightness adjusts brightness by n percent (-100 to 100).
func Brightness(n int) Filter { return newFilter("brightness", n) }

// Contrast adjusts contrast by n percent (-100 to 100).
func Contrast(n int) Filter { return newFilter("contrast", n) }

func Grayscale() Filter { return newFilter("grayscale") }

func NoUpscale() Filter { return newFilter("no_upscale") }

func StripICC() Filter { return newFilter("strip_icc") }

// MaxBytes asks the server to lower quality until the output fits in n bytes.
func MaxBytes(n int) Filter { return newFilter("max_bytes", n) }

// Watermark overlays the image at imageURL at (x, y) with alpha percent
// transparency. imageURL is interpolated as-is.
func Watermark(imageURL string, x, y, alpha int) Filter {
	return newFilter("watermark", imageURL, x, y, alpha)
}

// Fill paints the letterbox area of a fit-in image with c.
func Fill(c colorful.Color) Filter { return newFilter("fill", hexArg(c)) }

// FillNamed paints the letterbox area with a server-side keyword such as
// "auto", "blur" or "transparent", or with a CSS colour name.
func FillNamed(name string) Filter { return newFilter("fill", name) }

// BackgroundColor sets the colour composited under transparent pixels.
func BackgroundColor(c colorful.Color) Filter { return newFilter("background_color", hexArg(c)) }

// ParseColor reads a hex colour with or without the leading '#', in long
// (rrggbb) or short (rgb) form.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// ParseFilter parses "name(a,b,...)" or a bare "name" into a Filter. Args are
// kept as strings, which render identically to their numeric form.
func ParseFilter(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)

	open := strings.IndexByte(expr, '(')
	if open < 0 {
		if expr == "" || strings.ContainsAny(expr, ")") {
			return Filter{}, fmt.Errorf("%w: %q", ErrMalformedFilter, expr)
		}
		return Filter{Name: expr}, nil
	}

	name := strings.TrimSpace(expr[:open])
	if name == "" || !strings.HasSuffix(expr, ")") {
		return Filter{}, fmt.Errorf("%w: %q", ErrMalformedFilter, expr)
	}

	inner := expr[open+1 : len(expr)-1]
	if inner == "" {
		return Filter{Name: name}, nil
	}

	parts := strings.Split(inner, ",")
	args := make([]interface{}, len(parts))
	for i, p := range parts {
		args[i] = strings.TrimSpace(p)
	}
	return Filter{Name: name, Args: args}, nil
}

func newFilter(name string, args ...interface{}) Filter {
	if len(args) == 0 {
		return Filter{Name: name}
	}
	return Filter{Name: name, Args: args}
}

// hexArg renders c as "rrggbb", the form thumbor colour arguments expect.
func hexArg(c colorful.Color) string {
	return strings.TrimPrefix(c.Clamped().Hex(), "#")
}
