package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-pathtracer/pkg/core"
)

const texturedQuadOBJ = `# a unit quad split in two triangles
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
s off
f 1/1/1 2/2/1 3/3/1
f 1/1/1 3/3/1 4/4/1
`

func TestParseOBJ_TexturedQuad(t *testing.T) {
	data, err := ParseOBJ(strings.NewReader(texturedQuadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(data.Positions) != 4 || len(data.UVs) != 4 || len(data.Normals) != 1 {
		t.Fatalf("Expected 4 positions, 4 uvs, 1 normal, got %d, %d, %d",
			len(data.Positions), len(data.UVs), len(data.Normals))
	}

	expectedFaces := [][3]OBJFaceVertex{
		{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}},
		{{0, 0, 0}, {2, 2, 0}, {3, 3, 0}},
	}
	if diff := cmp.Diff(expectedFaces, data.Faces); diff != "" {
		t.Errorf("Faces mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(core.NewVec2(1, 1), data.UVs[2]); diff != "" {
		t.Errorf("UV mismatch (-want +got):\n%s", diff)
	}
}

func TestParseOBJ_FaceVariants(t *testing.T) {
	tests := []struct {
		name     string
		face     string
		expected [3]OBJFaceVertex
	}{
		{
			name:     "positions only",
			face:     "f 1 2 3",
			expected: [3]OBJFaceVertex{{0, -1, -1}, {1, -1, -1}, {2, -1, -1}},
		},
		{
			name:     "position and uv",
			face:     "f 1/1 2/2 3/3",
			expected: [3]OBJFaceVertex{{0, 0, -1}, {1, 1, -1}, {2, 2, -1}},
		},
		{
			name:     "position and normal",
			face:     "f 1//1 2//1 3//1",
			expected: [3]OBJFaceVertex{{0, -1, 0}, {1, -1, 0}, {2, -1, 0}},
		},
		{
			name:     "relative indices",
			face:     "f -3/-3/-1 -2/-2/-1 -1/-1/-1",
			expected: [3]OBJFaceVertex{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}},
		},
	}

	header := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvt 0 0\nvt 1 0\nvt 0 1\nvn 0 0 1\n"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ParseOBJ(strings.NewReader(header + tt.face + "\n"))
			if err != nil {
				t.Fatalf("ParseOBJ failed: %v", err)
			}
			if len(data.Faces) != 1 {
				t.Fatalf("Expected 1 face, got %d", len(data.Faces))
			}
			if diff := cmp.Diff(tt.expected, data.Faces[0]); diff != "" {
				t.Errorf("Face mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOBJ_FanTriangulation(t *testing.T) {
	input := "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nv -1 1 0\nf 1 2 3 4 5\n"
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}

	if len(data.Faces) != 3 {
		t.Fatalf("Expected pentagon to become 3 triangles, got %d", len(data.Faces))
	}
	for i, face := range data.Faces {
		if face[0].Position != 0 || face[1].Position != i+1 || face[2].Position != i+2 {
			t.Errorf("Triangle %d has unexpected corners %+v", i, face)
		}
	}
}

func TestParseOBJ_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine string
	}{
		{"non-numeric vertex", "v 0 0 0\nv 1 x 0\n", "line 2"},
		{"short vertex", "v 1 2\n", "line 1"},
		{"short uv", "vt 0.5\n", "line 1"},
		{"position out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", "line 4"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", "line 4"},
		{"normal out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\n\nf 1//1 2//1 3//1\n", "line 5"},
		{"relative index before start", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 -2 -1\n", "line 4"},
		{"degenerate face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "line 3"},
		{"garbage index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 three\n", "line 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOBJ(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantLine) {
				t.Errorf("Expected error to mention %q, got %v", tt.wantLine, err)
			}
		})
	}
}

func TestParseOBJ_IgnoresUnknownStatements(t *testing.T) {
	input := "mtllib foo.mtl\nusemtl bar\ng group\nv 0 0 0 1.0\nl 1 2\n# f 9 9 9\n"
	data, err := ParseOBJ(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseOBJ failed: %v", err)
	}
	if len(data.Positions) != 1 || len(data.Faces) != 0 {
		t.Errorf("Expected 1 position and no faces, got %d and %d", len(data.Positions), len(data.Faces))
	}
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(texturedQuadOBJ), 0o644); err != nil {
		t.Fatalf("Failed to write OBJ: %v", err)
	}

	data, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}
	if len(data.Faces) != 2 {
		t.Errorf("Expected 2 faces, got %d", len(data.Faces))
	}

	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing file")
	}
}
