package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
	assert.NoError(t, p.Validate())
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 120\nshow_fps: true\n"), 0644))

	p, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Size = 120
	want.ShowFPS = true
	assert.Equal(t, want, p)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [oops\n"), 0644))

	p, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.yaml")
	p := Default()
	p.Width, p.Height = 1024, 768
	p.RotationSpeed = 0.05
	require.NoError(t, Save(path, p))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Prefs)
	}{
		{"zero width", func(p *Prefs) { p.Width = 0 }},
		{"negative height", func(p *Prefs) { p.Height = -1 }},
		{"zero fps", func(p *Prefs) { p.TargetFPS = 0 }},
		{"zero size", func(p *Prefs) { p.Size = 0 }},
		{"negative speed", func(p *Prefs) { p.RotationSpeed = -0.1 }},
		{"negative radius", func(p *Prefs) { p.PointRadius = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalid)
		})
	}
}
