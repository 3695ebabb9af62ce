package web

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		0:          "0",
		950:        "950",
		4500000:    "4,500,000",
		1234.5:     "1,234.5",
		-120000:    "-120,000",
		1000000000: "1,000,000,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPrice(in), "price %v", in)
	}
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"login.html", "dashboard.html", "builder.html", "add_property.html",
		"edit_property.html", "properties.html", "schedule.html", "error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "error.html", map[string]any{
		"Title":   "Not found",
		"Message": "There is nothing at this address.",
	}))
	assert.Contains(t, buf.String(), "There is nothing at this address.")
	assert.NotContains(t, buf.String(), "Sign out")
}

func TestStatic(t *testing.T) {
	f, err := Static().Open("/console.js")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Contains(t, string(body), "data-confirm")
}
