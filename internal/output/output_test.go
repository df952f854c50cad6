package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"worldscout/internal/world"
)

func sampleReport() *Report {
	modTime := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	return &Report{
		GeneratedAt: time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
		Roots:       []string{"/home/steve/.minecraft", "/srv/minecraft"},
		Worlds: []world.World{
			{
				Path:         "/home/steve/.minecraft/saves/Skyblock",
				Root:         "/home/steve/.minecraft",
				Name:         "Skyblock",
				LevelDatSize: 8192,
				ModTime:      modTime,
			},
			{
				Path:         "/srv/minecraft/creative | survival",
				Root:         "/srv/minecraft",
				Name:         "creative | survival",
				LevelDatSize: 2048,
				ModTime:      modTime,
			},
		},
		Warnings: []Warning{
			{Path: "/home/steve/.minecraft/locked", Message: "permission denied"},
		},
		Summary: Summary{
			Roots:       2,
			DirsVisited: 40,
			WorldsFound: 2,
			Warnings:    1,
		},
	}
}

func TestIsValidFormat(t *testing.T) {
	t.Parallel()

	for _, valid := range ValidFormats() {
		assert.True(t, IsValidFormat(valid), valid)
	}
	assert.True(t, IsValidFormat("JSON"), "case-insensitive")
	assert.False(t, IsValidFormat("xml"))
	assert.False(t, IsValidFormat(""))
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"worlds.json":     FormatJSON,
		"worlds.yaml":     FormatYAML,
		"worlds.yml":      FormatYAML,
		"worlds.toml":     FormatTOML,
		"worlds.md":       FormatMarkdown,
		"worlds.markdown": FormatMarkdown,
		"worlds.txt":      FormatTable,
		"WORLDS.JSON":     FormatJSON,
	}
	for filename, want := range cases {
		got, err := InferFormat(filename)
		require.NoError(t, err, filename)
		assert.Equal(t, want, got, filename)
	}

	_, err := InferFormat("worlds.xml")
	require.Error(t, err)
	_, err = InferFormat("worlds")
	require.Error(t, err)
}

func TestGetFormatter(t *testing.T) {
	t.Parallel()

	for _, valid := range ValidFormats() {
		formatter, err := GetFormatter(Format(valid))
		require.NoError(t, err, valid)
		assert.NotNil(t, formatter)
	}

	_, err := GetFormatter(Format("xml"))
	require.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	worlds, ok := decoded["worlds"].([]any)
	require.True(t, ok)
	require.Len(t, worlds, 2)

	first, ok := worlds[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "/home/steve/.minecraft/saves/Skyblock", first["path"])
	assert.Equal(t, "Skyblock", first["name"])

	summary, ok := decoded["summary"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, summary["worlds_found"])
	assert.EqualValues(t, 40, summary["dirs_visited"])
}

func TestYAMLFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "worlds")
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, string(data), "Skyblock")
}

func TestTOMLFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatTOML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Skyblock")
	assert.Contains(t, string(data), "worlds_found")
}

func TestMarkdownFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatMarkdown)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "# Worldscout Scan Report")
	assert.Contains(t, text, "Skyblock")
	assert.Contains(t, text, "permission denied")
	// Pipes inside world names must not break the table.
	assert.Contains(t, text, `creative \| survival`)
}

func TestTableFormatter(t *testing.T) {
	t.Parallel()

	data, err := FormatReport(sampleReport(), FormatTable)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "NAME")
	assert.Contains(t, text, "PATH")
	assert.Contains(t, text, "Skyblock")
}

func TestEmptyReport(t *testing.T) {
	t.Parallel()

	empty := &Report{
		GeneratedAt: time.Now(),
		Roots:       []string{"/tmp"},
		Summary:     Summary{Roots: 1},
	}

	for _, valid := range ValidFormats() {
		data, err := FormatReport(empty, Format(valid))
		require.NoError(t, err, valid)
		assert.NotEmpty(t, data, valid)
	}
}

func TestWriteToFile(t *testing.T) {
	t.Parallel()

	t.Run("WritesInferredFormat", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "worlds.json")
		require.NoError(t, WriteToFile(sampleReport(), path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Contains(t, decoded, "worlds")
	})

	t.Run("UnknownExtension", func(t *testing.T) {
		t.Parallel()
		err := WriteToFile(sampleReport(), filepath.Join(t.TempDir(), "worlds.xml"))
		require.Error(t, err)
	})
}
