package render

import (
	"io"
	"strings"

	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const lazyMarkerClass = "lazyload"

// Props describes one responsive image.
type Props struct {
	// Src is the absolute URL of the source image.
	Src string `json:"src"`

	// ServerURL overrides the ambient image-server URL when set.
	ServerURL string `json:"server_url,omitempty"`

	Options thumbor.Options `json:"options"`

	// Breakpoints overrides the renderer's ladder. nil means "not set"; an
	// empty, non-nil slice is an error.
	Breakpoints []int `json:"breakpoints,omitempty"`

	Lazy  bool       `json:"lazy,omitempty"`
	Attrs Attributes `json:"attributes,omitempty"`
}

// Renderer renders Props against an ambient scope.
type Renderer struct {
	Scope  *thumbor.Scope
	Signer *thumbor.Signer

	// Breakpoints is the ladder used when Props carries none. nil selects
	// thumbor.DefaultBreakpoints.
	Breakpoints []int
}

// New returns a Renderer whose root scope provides endpoint. An empty key
// disables signing.
func New(endpoint, securityKey string, breakpoints []int) *Renderer {
	var scope *thumbor.Scope
	if endpoint != "" {
		scope = thumbor.NewScope(endpoint)
	}
	return &Renderer{
		Scope:       scope,
		Signer:      thumbor.NewSigner(securityKey),
		Breakpoints: breakpoints,
	}
}

// WithEndpoint returns a copy of r with a nested scope providing endpoint.
func (r *Renderer) WithEndpoint(endpoint string) *Renderer {
	c := *r
	c.Scope = r.Scope.With(endpoint)
	return &c
}

// Endpoint resolves the image-server URL for p.
func (r *Renderer) Endpoint(p Props) (string, error) {
	return r.Scope.Resolve(p.ServerURL)
}

// URL returns a single processed-image URL using p.Options unchanged.
func (r *Renderer) URL(p Props) (string, error) {
	b, err := r.builder(p)
	if err != nil {
		return "", err
	}
	return b.URL(p.Src, p.Options)
}

// ResponsiveSet returns the candidate set for p.
func (r *Renderer) ResponsiveSet(p Props) (*thumbor.ResponsiveSet, error) {
	b, err := r.builder(p)
	if err != nil {
		return nil, err
	}
	return b.ResponsiveSet(p.Src, p.Options, r.breakpoints(p))
}

// Node builds the <img> element for p.
func (r *Renderer) Node(p Props) (*html.Node, error) {
	set, err := r.ResponsiveSet(p)
	if err != nil {
		return nil, err
	}

	extra, err := p.Attrs.passThrough(p.Lazy)
	if err != nil {
		return nil, err
	}

	var attrs []html.Attribute
	if p.Lazy {
		attrs = lazyAttrs(set, p.Attrs)
	} else {
		attrs = eagerAttrs(set)
	}

	return &html.Node{
		Type:     html.ElementNode,
		Data:     "img",
		DataAtom: atom.Img,
		Attr:     append(attrs, extra...),
	}, nil
}

// Image renders the <img> element for p as HTML.
func (r *Renderer) Image(p Props) (string, error) {
	var sb strings.Builder
	if err := r.WriteImage(&sb, p); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteImage renders the <img> element for p to w.
func (r *Renderer) WriteImage(w io.Writer, p Props) error {
	n, err := r.Node(p)
	if err != nil {
		return err
	}
	return html.Render(w, n)
}

func (r *Renderer) builder(p Props) (thumbor.Builder, error) {
	endpoint, err := r.Endpoint(p)
	if err != nil {
		return thumbor.Builder{}, err
	}
	return thumbor.Builder{Endpoint: endpoint, Signer: r.Signer}, nil
}

func (r *Renderer) breakpoints(p Props) []int {
	switch {
	case p.Breakpoints != nil:
		return p.Breakpoints
	case r.Breakpoints != nil:
		return r.Breakpoints
	default:
		return thumbor.DefaultBreakpoints
	}
}

func eagerAttrs(set *thumbor.ResponsiveSet) []html.Attribute {
	return []html.Attribute{
		{Key: "src", Val: set.FallbackURL},
		{Key: "srcset", Val: set.CandidateSet},
	}
}

func lazyAttrs(set *thumbor.ResponsiveSet, a Attributes) []html.Attribute {
	sizes := a.Get("sizes")
	if sizes == "" {
		sizes = "auto"
	}
	class := strings.TrimSpace(a.Get("class") + " " + lazyMarkerClass)

	return []html.Attribute{
		{Key: "data-sizes", Val: sizes},
		{Key: "data-src", Val: set.FallbackURL},
		{Key: "data-srcset", Val: set.CandidateSet},
		{Key: "class", Val: class},
	}
}
