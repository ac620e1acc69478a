package plan

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildTargetNames(t *testing.T) {
	cases := []struct {
		input string
		types bool
		want  string
	}{
		{"models/Duck.glb", false, "Duck.jsx"},
		{"duck.glb", false, "Duck.jsx"},
		{"duck.glb", true, "Duck.tsx"},
		{"DUCK.glb", false, "DUCK.jsx"},
		{"my.model.glb", false, "My.model.jsx"},
		{"assets/low-poly_tree.gltf", true, "Low-poly_tree.tsx"},
		{`C:\assets\scene.gltf`, false, "Scene.jsx"},
		{"_private.glb", false, "_private.jsx"},
		{"models/.hidden.glb", false, "Hidden.jsx"},
		{"scene.v2.final.gltf", true, "Scene.v2.final.tsx"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := BuildTarget(tc.input, Options{OutputDir: "dist", Types: tc.types})
			require.NoError(t, err)
			require.Equal(t, filepath.Join("dist", tc.want), got)
		})
	}
}

func TestBuildTargetJoinsOutputDir(t *testing.T) {
	got, err := BuildTarget("models/Duck.glb", Options{OutputDir: "dist"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("dist", "Duck.jsx"), got)

	got, err = BuildTarget("duck.glb", Options{OutputDir: "src/components/"})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("src", "components", "Duck.jsx"), got)
}

func TestBuildTargetMissingOutput(t *testing.T) {
	_, err := BuildTarget("duck.glb", Options{})
	var missing *MissingOutputError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "duck.glb", missing.Input)
}

func TestBuildTargetBadNames(t *testing.T) {
	for _, input := range []string{"", "models/Duck", "models/", "scene.glb/", ".glb", "duck.glb ", "..glb", "Duck..glb", "models/duck.glb."} {
		t.Run(input, func(t *testing.T) {
			_, err := BuildTarget(input, Options{OutputDir: "dist"})
			var nameErr *NameExtractionError
			require.ErrorAs(t, err, &nameErr)
			require.Equal(t, input, nameErr.Input)
		})
	}
}

func TestExtractNameExt(t *testing.T) {
	got, err := ExtractNameExt("models/my.model.glb")
	require.NoError(t, err)
	require.Equal(t, "my.model.glb", got)

	got, err = ExtractNameExt("models/old duck.glb")
	require.NoError(t, err)
	require.Equal(t, "duck.glb", got)
}

func TestStripExt(t *testing.T) {
	require.Equal(t, "my.model", StripExt("my.model.glb"))
	require.Equal(t, "duck", StripExt("duck.glb"))
	require.Equal(t, "duck", StripExt("duck"))
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Duck", Capitalize("duck"))
	require.Equal(t, "DUCK", Capitalize("DUCK"))
	require.Equal(t, "", Capitalize(""))
	require.Equal(t, "-x", Capitalize("-x"))
}
