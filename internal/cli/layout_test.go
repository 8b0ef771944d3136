package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smasonuk/walkthrough"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLayoutEmptyGallery(t *testing.T) {
	out, err := runRoot(t, "layout", "--count", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "30.00 m")
	assert.Contains(t, out, "24.00 m")
	assert.Contains(t, out, "intro")
	for _, wall := range []string{"west", "north", "east", "south"} {
		assert.Contains(t, out, wall)
	}
}

func TestLayoutCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`items:
  - title: Paisaje
  - title: Retrato
  - title: Boceto
`), 0o644))

	out, err := runRoot(t, "layout", "--catalog", path)
	require.NoError(t, err)
	for _, title := range []string{"Paisaje", "Retrato", "Boceto"} {
		assert.Contains(t, out, title)
	}
}

func TestLayoutFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"neither flag", []string{"layout"}},
		{"both flags", []string{"layout", "--count", "3", "--catalog", "gallery.yaml"}},
		{"negative count", []string{"layout", "--count", "-1"}},
		{"missing catalog", []string{"layout", "--catalog", "/nonexistent/gallery.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRoot(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRenderLayoutRows(t *testing.T) {
	plan := walkthrough.NewPlan(5, walkthrough.DefaultConfig().Layout)
	out := renderLayout(plan, []string{"a0", "a1", "a2", "a3", "a4"})

	for _, title := range []string{"a0", "a1", "a2", "a3", "a4"} {
		assert.Equal(t, 1, strings.Count(out, title), "title %s", title)
	}
	assert.Equal(t, 1, strings.Count(out, "intro"))
}
