package thumbor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		ambient  string
		want     string
		wantErr  bool
	}{
		{"explicit wins", "https://explicit.example", "https://ambient.example", "https://explicit.example", false},
		{"ambient fallback", "", "https://ambient.example", "https://ambient.example", false},
		{"explicit only", "https://explicit.example", "", "https://explicit.example", false},
		{"neither", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEndpoint(tt.explicit, tt.ambient)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMissingEndpoint))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScope_NestedOverride(t *testing.T) {
	root := NewScope("https://root.example")
	child := root.With("https://child.example")
	grandchild := child.With("https://grandchild.example")

	assert.Equal(t, "https://root.example", root.Endpoint())
	assert.Equal(t, "https://child.example", child.Endpoint())
	assert.Equal(t, "https://grandchild.example", grandchild.Endpoint())

	assert.Equal(t, child, grandchild.Parent())
	assert.Equal(t, 3, grandchild.Depth())
	assert.Equal(t, 1, root.Depth())
}

func TestScope_SiblingsIndependent(t *testing.T) {
	root := NewScope("https://root.example")
	a := root.With("https://a.example")
	b := root.With("https://b.example")

	assert.Equal(t, "https://a.example", a.Endpoint())
	assert.Equal(t, "https://b.example", b.Endpoint())
	assert.Equal(t, "https://root.example", root.Endpoint())
}

func TestScope_Nil(t *testing.T) {
	var s *Scope
	assert.Equal(t, "", s.Endpoint())
	assert.Nil(t, s.Parent())
	assert.Equal(t, 0, s.Depth())

	_, err := s.Resolve("")
	assert.True(t, errors.Is(err, ErrMissingEndpoint))

	got, err := s.Resolve("https://explicit.example")
	require.NoError(t, err)
	assert.Equal(t, "https://explicit.example", got)
}

func TestScope_InnermostEmptyOverrides(t *testing.T) {
	s := NewScope("https://root.example").With("")

	_, err := s.Resolve("")
	assert.True(t, errors.Is(err, ErrMissingEndpoint))
}
