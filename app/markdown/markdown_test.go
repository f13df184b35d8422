package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	html, err := ToHTML("# Finding Totoro\n\n- **Dappled Light**\n- Ancient Trees\n")
	require.NoError(t, err)

	assert.Contains(t, html, `<h1 id="finding-totoro">Finding Totoro</h1>`)
	assert.Contains(t, html, "<li><strong>Dappled Light</strong></li>")
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	html, err := ToHTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
