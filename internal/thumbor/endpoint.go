package thumbor

// ResolveEndpoint picks the image-server base URL. An explicit value wins
// over the ambient one. An empty string means "not supplied".
func ResolveEndpoint(explicit, ambient string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if ambient != "" {
		return ambient, nil
	}
	return "", ErrMissingEndpoint
}

// Scope carries an ambient image-server URL down a composition tree.
//
// Scopes are immutable. With pushes a nested override and leaves the
// receiver untouched, so a parent scope can be shared while children
// override it locally. A nil *Scope provides no endpoint.
type Scope struct {
	parent   *Scope
	endpoint string
}

// NewScope returns a root scope providing endpoint.
func NewScope(endpoint string) *Scope {
	return &Scope{endpoint: endpoint}
}

// With returns a child scope providing endpoint.
func (s *Scope) With(endpoint string) *Scope {
	return &Scope{parent: s, endpoint: endpoint}
}

// Endpoint returns the value provided by the innermost scope.
func (s *Scope) Endpoint() string {
	if s == nil {
		return ""
	}
	return s.endpoint
}

// Parent returns the enclosing scope, or nil at the root.
func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

// Depth reports how many scopes enclose s, counting s itself.
func (s *Scope) Depth() int {
	n := 0
	for ; s != nil; s = s.parent {
		n++
	}
	return n
}

// Resolve resolves explicit against the scope's ambient endpoint.
func (s *Scope) Resolve(explicit string) (string, error) {
	return ResolveEndpoint(explicit, s.Endpoint())
}
