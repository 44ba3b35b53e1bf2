package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffDocuments(t *testing.T) {
	t.Run("equal documents produce no diff", func(t *testing.T) {
		doc := []byte(`{"name": "com.myco.tool", "version": "0.1.0"}`)
		diff, err := DiffDocuments("existing", doc, "new", doc, false)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("changed value is reported", func(t *testing.T) {
		from := []byte(`{"name": "com.myco.tool", "version": "0.1.0"}`)
		to := []byte(`{"name": "com.myco.tool", "version": "0.2.0"}`)
		diff, err := DiffDocuments("existing", from, "new", to, false)
		require.NoError(t, err)
		assert.Contains(t, diff, "version")
		assert.Contains(t, diff, "0.2.0")
	})

	t.Run("both empty", func(t *testing.T) {
		diff, err := DiffDocuments("a", nil, "b", []byte("  "), false)
		require.NoError(t, err)
		assert.Empty(t, diff)
	})

	t.Run("invalid input errors", func(t *testing.T) {
		_, err := DiffDocuments("a", []byte("{not: [valid"), "b", []byte(`{}`), false)
		assert.Error(t, err)
	})
}

func TestIndentDiff(t *testing.T) {
	assert.Empty(t, IndentDiff("", "  "))
	assert.Equal(t, "  a\n  b\n", IndentDiff("a\n\nb", "  "))
}
