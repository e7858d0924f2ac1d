package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// previewData holds sample template variables keyed by template name.
var previewData = map[Template]map[string]string{
	TemplateWelcome: {
		"MemberName": "Alice",
		"Discipline": "Brazilian Jiu-Jitsu",
	},
}

func TestRender(t *testing.T) {
	t.Run("Welcome", func(t *testing.T) {
		html, err := Render(TemplateWelcome, previewData[TemplateWelcome])
		require.NoError(t, err)
		assert.Contains(t, html, "Welcome, Alice!")
		assert.Contains(t, html, "<strong>Brazilian Jiu-Jitsu</strong>")
	})

	t.Run("EscapesValues", func(t *testing.T) {
		html, err := Render(TemplateWelcome, map[string]string{
			"MemberName": "<script>x</script>",
			"Discipline": "Judo",
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})

	t.Run("UnknownTemplate", func(t *testing.T) {
		_, err := Render(Template("missing"), nil)
		assert.ErrorContains(t, err, "failed to parse email template missing")
	})
}
