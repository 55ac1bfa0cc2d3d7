package assets

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folha-tarefa/internal/service/layout"
)

func TestLoad_Missing(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	a := Load(log, t.TempDir(), layout.DefaultStyles())

	assert.Equal(t, layout.RichParagraph, a.Logo.Kind)
	assert.Equal(t, "LOGO", a.Logo.Text)
	assert.Equal(t, layout.RichBox, a.Checkbox.Kind)
	assert.Contains(t, buf.String(), "failed to load logo")
}

func TestLoad_Present(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, logoFile), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, checkboxFile), []byte("png"), 0o644))

	a := Load(slog.Default(), dir, layout.DefaultStyles())

	assert.Equal(t, layout.RichImage, a.Logo.Kind)
	assert.Equal(t, filepath.Join(dir, logoFile), a.Logo.Path)
	assert.Equal(t, 3.5, a.Logo.Width)
	assert.Equal(t, layout.RichImage, a.Checkbox.Kind)
}
