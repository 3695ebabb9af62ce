package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	in := []byte(`<svg onload="alert(1)" width="10"><script>alert(2)</script>` +
		`<a xlink:href="javascript:alert(3)"><rect onclick='x()' /></a>` +
		`<foreignObject><body>hi</body></foreignObject></svg>`)

	out, err := Sanitize(in)
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "script")
	assert.NotContains(t, s, "onload")
	assert.NotContains(t, s, "onclick")
	assert.NotContains(t, s, "javascript:")
	assert.NotContains(t, s, "foreignObject")
	assert.Contains(t, s, `width="10"`)
	assert.Contains(t, s, "<rect")
}

func TestSanitizeRejectsNonSVG(t *testing.T) {
	_, err := Sanitize([]byte("<html></html>"))
	assert.ErrorIs(t, err, ErrNotSVG)
}

func TestSanitizeDropsRemoteReferences(t *testing.T) {
	in := []byte(`<svg><image href="https://tracker.example/p.png" width="1"/>` +
		`<use xlink:href='//cdn.example/sprite.svg#a'/><use href="#local"/></svg>`)

	out, err := Sanitize(in)
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "tracker.example")
	assert.NotContains(t, s, "cdn.example")
	assert.Contains(t, s, `href="#local"`)
	assert.Contains(t, s, `width="1"`)
}
