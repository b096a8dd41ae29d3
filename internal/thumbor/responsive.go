package thumbor

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultBreakpoints is the reference width ladder used when the caller
// supplies none.
var DefaultBreakpoints = []int{160, 360, 480, 720, 960, 1024}

// Candidate is one entry of a responsive candidate set.
type Candidate struct {
	Width int    `json:"width"`
	URL   string `json:"url"`
}

// String renders the candidate as "<url> <w>w".
func (c Candidate) String() string {
	return c.URL + " " + strconv.Itoa(c.Width) + "w"
}

// ResponsiveSet is the srcset value for a list of breakpoints plus the
// fallback src.
type ResponsiveSet struct {
	Candidates   []Candidate `json:"candidates"`
	CandidateSet string      `json:"srcset"`
	FallbackURL  string      `json:"src"`
}

// BuildResponsiveSet builds one URL per breakpoint with opts resized to
// that width and an unconstrained height.
func BuildResponsiveSet(serverBaseURL, sourceImageURL string, opts Options, breakpoints []int) (*ResponsiveSet, error) {
	return Builder{Endpoint: serverBaseURL}.ResponsiveSet(sourceImageURL, opts, breakpoints)
}

// ResponsiveSet builds the candidate set for src. Candidates keep the order of
// breakpoints. The fallback is the URL for the last breakpoint, not the widest.
func (b Builder) ResponsiveSet(src string, opts Options, breakpoints []int) (*ResponsiveSet, error) {
	if len(breakpoints) == 0 {
		return nil, ErrEmptyBreakpointSet
	}

	set := &ResponsiveSet{Candidates: make([]Candidate, 0, len(breakpoints))}
	entries := make([]string, 0, len(breakpoints))

	for _, w := range breakpoints {
		if w <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidBreakpoint, w)
		}
		u, err := b.URL(src, opts.WithWidth(w))
		if err != nil {
			return nil, err
		}
		c := Candidate{Width: w, URL: u}
		set.Candidates = append(set.Candidates, c)
		entries = append(entries, c.String())
	}

	set.CandidateSet = strings.Join(entries, ",")
	set.FallbackURL = set.Candidates[len(set.Candidates)-1].URL
	return set, nil
}
