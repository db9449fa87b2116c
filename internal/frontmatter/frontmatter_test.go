package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompose_TitleAndUID(t *testing.T) {
	out, err := Compose(PageFields("Class Widget", "ui.Widget"), Style{})
	require.NoError(t, err)
	require.Equal(t, "---\ntitle: Class Widget\nuid: ui.Widget\n---\n", string(out))
}

func TestCompose_EmptyFieldsYieldNothing(t *testing.T) {
	out, err := Compose(nil, Style{})
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestCompose_CRLF(t *testing.T) {
	out, err := Compose(PageFields("T", "u"), Style{Newline: "\r\n"})
	require.NoError(t, err)
	require.Equal(t, "---\r\ntitle: T\r\nuid: u\r\n---\r\n", string(out))
}

func TestSplit_RoundTrip(t *testing.T) {
	page := []byte("---\ntitle: T\nuid: u\n---\n# Heading\n\nbody\n")

	header, body, had, err := Split(page)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, "# Heading\n\nbody\n", string(body))

	fields, err := ParseYAML(header)
	require.NoError(t, err)
	require.Equal(t, "T", fields["title"])
	require.Equal(t, "u", fields["uid"])
}

func TestSplit_NoHeader(t *testing.T) {
	_, body, had, err := Split([]byte("# Heading\n"))
	require.NoError(t, err)
	require.False(t, had)
	require.Equal(t, "# Heading\n", string(body))
}

func TestSplit_MissingClose(t *testing.T) {
	_, _, _, err := Split([]byte("---\ntitle: T\n"))
	require.ErrorIs(t, err, ErrMissingClosingDelimiter)
}

func TestSerializeYAML_SortedKeys(t *testing.T) {
	out, err := SerializeYAML(map[string]any{"zeta": 1, "alpha": true, "mid": "x"}, Style{})
	require.NoError(t, err)
	require.Equal(t, "alpha: true\nmid: x\nzeta: 1\n", string(out))
}
