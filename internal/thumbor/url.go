package thumbor

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Builder binds an image-server endpoint and an optional Signer.
//
// The zero Signer produces unsigned URLs. A Builder holds no mutable state and
// may be shared between goroutines.
type Builder struct {
	Endpoint string
	Signer   *Signer
}

// BuildURL returns the processed-image URL for src on the server at
// serverBaseURL.
//
// The server base is interpolated verbatim. src must be an absolute URL.
// Only its hostname and path survive.
func BuildURL(serverBaseURL, sourceImageURL string, opts Options) (string, error) {
	return Builder{Endpoint: serverBaseURL}.URL(sourceImageURL, opts)
}

// SignedURL is BuildURL with the auth segment computed from key. An explicit
// opts.AuthToken still takes precedence.
func SignedURL(serverBaseURL, sourceImageURL string, opts Options, key string) (string, error) {
	return Builder{Endpoint: serverBaseURL, Signer: NewSigner(key)}.URL(sourceImageURL, opts)
}

// URL builds the processed-image URL for src.
func (b Builder) URL(src string, opts Options) (string, error) {
	path, err := Path(src, opts)
	if err != nil {
		return "", err
	}

	auth := opts.AuthToken
	if auth == "" {
		if b.Signer != nil {
			auth = b.Signer.Sign(path)
		} else {
			auth = UnsafeToken
		}
	}

	return b.Endpoint + "/" + auth + "/" + path, nil
}

// Path returns the part of the URL that follows the auth segment: the
// transformation segments and the upstream host and path, with no leading
// slash. This is the string a signature is computed over.
func Path(src string, opts Options) (string, error) {
	upstream, err := upstreamPath(src)
	if err != nil {
		return "", err
	}
	return strings.Join(segments(opts), "/") + "/" + upstream, nil
}

// segments renders the transformation segments in wire order, excluding auth.
func segments(opts Options) []string {
	parts := make([]string, 0, 8)

	if opts.Trim {
		trim := segmentTrim
		if opts.TrimSource != "" {
			trim += ":" + string(opts.TrimSource)
		}
		parts = append(parts, trim)
	}

	if c := opts.Crop; c != nil {
		parts = append(parts, fmt.Sprintf("%dx%d:%dx%d",
			c.TopLeft.X, c.TopLeft.Y, c.BottomRight.X, c.BottomRight.Y))
	}

	if opts.FitIn {
		parts = append(parts, segmentFitIn)
	}

	parts = append(parts, fmt.Sprintf("%dx%d", opts.Size.Width, opts.Size.Height))

	if opts.HorizontalAlign != "" {
		parts = append(parts, string(opts.HorizontalAlign))
	}
	if opts.VerticalAlign != "" {
		parts = append(parts, string(opts.VerticalAlign))
	}

	if opts.SmartCrop {
		parts = append(parts, segmentSmart)
	}

	if len(opts.Filters) > 0 {
		rendered := make([]string, len(opts.Filters))
		for i, f := range opts.Filters {
			rendered[i] = f.String()
		}
		parts = append(parts, segmentFilters+strings.Join(rendered, ":"))
	}

	return parts
}

// String renders the filter as name(arg1,arg2,...).
func (f Filter) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = formatArg(a)
	}
	return f.Name + "(" + strings.Join(args, ",") + ")"
}

func formatArg(v interface{}) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	case int:
		return strconv.Itoa(a)
	case int64:
		return strconv.FormatInt(a, 10)
	case int32:
		return strconv.FormatInt(int64(a), 10)
	case uint:
		return strconv.FormatUint(uint64(a), 10)
	case uint64:
		return strconv.FormatUint(a, 10)
	case float64:
		return strconv.FormatFloat(a, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(a), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(a)
	case fmt.Stringer:
		return a.String()
	default:
		return fmt.Sprint(a)
	}
}

// upstreamPath returns "<hostname><path>" for an absolute URL.
func upstreamPath(src string) (string, error) {
	u, err := url.Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedSourceURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrMalformedSourceURL, src)
	}

	host, err := asciiHostname(u.Hostname())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedSourceURL, err)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return host + path, nil
}

// asciiHostname lower-cases and punycode-encodes a hostname. IPv6 literals
// keep their brackets.
func asciiHostname(host string) (string, error) {
	if host == "" {
		return "", fmt.Errorf("empty host")
	}
	if strings.Contains(host, ":") {
		return "[" + strings.ToLower(host) + "]", nil
	}
	return idna.Punycode.ToASCII(strings.ToLower(host))
}
