package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ironsheep/thumbor-tools-mcp/internal/render"
	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// imageFlags are the flags shared by url, srcset and img.
type imageFlags struct {
	src         string
	serverURL   string
	optionsFile string

	authToken  string
	width      int
	height     int
	trim       bool
	trimSource string
	crop       string
	fitIn      bool
	halign     string
	valign     string
	smart      bool
	filters    []string
	fill       string
	quality    int
	format     string

	breakpoints []int
	lazy        bool
	attrs       []string
}

func (f *imageFlags) register(cmd *cobra.Command, withSet, withImg bool) {
	fs := cmd.Flags()

	fs.StringVar(&f.src, "src", "", "Absolute URL of the source image (required)")
	fs.StringVar(&f.serverURL, "server-url", "", "Thumbor server base URL (default: configured server_url)")
	fs.StringVar(&f.optionsFile, "options", "", "YAML file with transformation options; flags override it")

	fs.StringVar(&f.authToken, "auth-token", "", "Precomputed signature to use instead of signing")
	fs.IntVar(&f.width, "width", 0, "Target width (0 keeps aspect ratio)")
	fs.IntVar(&f.height, "height", 0, "Target height (0 keeps aspect ratio)")
	fs.BoolVar(&f.trim, "trim", false, "Trim surrounding space")
	fs.StringVar(&f.trimSource, "trim-source", "", "Pixel defining the trim colour: top-left or bottom-right")
	fs.StringVar(&f.crop, "crop", "", "Manual crop as x1xy1:x2xy2, e.g. 10x20:200x220")
	fs.BoolVar(&f.fitIn, "fit-in", false, "Fit inside the target box instead of cropping")
	fs.StringVar(&f.halign, "halign", "", "Horizontal alignment: left, center or right")
	fs.StringVar(&f.valign, "valign", "", "Vertical alignment: top, middle or bottom")
	fs.BoolVar(&f.smart, "smart", false, "Use smart (focal point) cropping")
	fs.StringArrayVar(&f.filters, "filter", nil, "Filter expression name(arg,...); repeatable")
	fs.StringVar(&f.fill, "fill", "", "Fill colour for fit-in letterboxing (#rrggbb, rgb) or keyword (auto, blur, transparent)")
	fs.IntVar(&f.quality, "quality", 0, "Output quality 1-100")
	fs.StringVar(&f.format, "format", "", "Output format, e.g. webp")

	if withSet {
		fs.IntSliceVar(&f.breakpoints, "breakpoints", nil, "Comma-separated candidate widths (default: configured ladder)")
	}
	if withImg {
		fs.BoolVar(&f.lazy, "lazy", false, "Render for lazysizes (default: configured lazy)")
		fs.StringArrayVar(&f.attrs, "attr", nil, "Extra attribute as key=value; repeatable")
	}

	_ = cmd.MarkFlagRequired("src")
}

// props assembles render.Props from the options file and the flags that
// were set on cmd.
func (f *imageFlags) props(cmd *cobra.Command, defaultLazy bool) (render.Props, error) {
	p := render.Props{Src: f.src, ServerURL: f.serverURL}

	if f.optionsFile != "" {
		opts, err := loadOptions(f.optionsFile)
		if err != nil {
			return p, err
		}
		p.Options = opts
	}

	fs := cmd.Flags()
	o := &p.Options

	if fs.Changed("auth-token") {
		o.AuthToken = f.authToken
	}
	if fs.Changed("width") {
		o.Size.Width = f.width
	}
	if fs.Changed("height") {
		o.Size.Height = f.height
	}
	if fs.Changed("trim") {
		o.Trim = f.trim
	}
	if fs.Changed("trim-source") {
		o.Trim = true
		o.TrimSource = thumbor.TrimSource(f.trimSource)
	}
	if fs.Changed("crop") {
		c, err := parseCrop(f.crop)
		if err != nil {
			return p, err
		}
		o.Crop = c
	}
	if fs.Changed("fit-in") {
		o.FitIn = f.fitIn
	}
	if fs.Changed("halign") {
		o.HorizontalAlign = thumbor.HorizontalAlign(f.halign)
	}
	if fs.Changed("valign") {
		o.VerticalAlign = thumbor.VerticalAlign(f.valign)
	}
	if fs.Changed("smart") {
		o.SmartCrop = f.smart
	}

	for _, expr := range f.filters {
		filter, err := thumbor.ParseFilter(expr)
		if err != nil {
			return p, err
		}
		o.Filters = append(o.Filters, filter)
	}
	if f.quality > 0 {
		o.Filters = append(o.Filters, thumbor.Quality(f.quality))
	}
	if f.format != "" {
		o.Filters = append(o.Filters, thumbor.Format(f.format))
	}
	if f.fill != "" {
		o.Filters = append(o.Filters, fillFilter(f.fill))
	}

	if fs.Lookup("breakpoints") != nil && fs.Changed("breakpoints") {
		p.Breakpoints = f.breakpoints
		if p.Breakpoints == nil {
			p.Breakpoints = []int{}
		}
	}

	p.Lazy = defaultLazy
	if fs.Lookup("lazy") != nil && fs.Changed("lazy") {
		p.Lazy = f.lazy
	}

	if len(f.attrs) > 0 {
		p.Attrs = make(render.Attributes, len(f.attrs))
		for _, kv := range f.attrs {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return p, fmt.Errorf("invalid --attr %q: want key=value", kv)
			}
			p.Attrs[k] = v
		}
	}

	return p, nil
}

// loadOptions decodes a YAML options file.
func loadOptions(path string) (thumbor.Options, error) {
	var opts thumbor.Options

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	return opts, nil
}

// parseCrop reads "x1xy1:x2xy2".
func parseCrop(s string) (*thumbor.Crop, error) {
	var c thumbor.Crop
	n, err := fmt.Sscanf(s, "%dx%d:%dx%d", &c.TopLeft.X, &c.TopLeft.Y, &c.BottomRight.X, &c.BottomRight.Y)
	if err != nil || n != 4 {
		return nil, fmt.Errorf("invalid --crop %q: want x1xy1:x2xy2", s)
	}
	return &c, nil
}

// fillFilter accepts a hex colour or passes anything else through as a
// keyword.
func fillFilter(s string) thumbor.Filter {
	if c, err := thumbor.ParseColor(s); err == nil {
		return thumbor.Fill(c)
	}
	return thumbor.FillNamed(s)
}
