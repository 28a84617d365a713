package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefinesSemanticStyles(t *testing.T) {
	reg, err := Load(lipgloss.NewRenderer(&bytes.Buffer{}))
	require.NoError(t, err)

	for _, name := range []string{"Header", "Key", "Success", "Warning", "Error", "Muted", "Item"} {
		_, ok := reg[name]
		assert.True(t, ok, "style %s should be defined", name)
	}
	assert.True(t, reg.Get("Header").GetBold())
	assert.Equal(t, 2, reg.Get("Item").GetPaddingLeft())
}

func TestGet_UnknownStyle(t *testing.T) {
	reg := Registry{}
	assert.Equal(t, "plain", reg.Get("Nope").Render("plain"))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("styles: ["), lipgloss.NewRenderer(&bytes.Buffer{}))
	assert.Error(t, err)
}
