package polyscene

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPLYRoundTrip(t *testing.T) {
	original := Cube(1.5, Red, Green, Blue, Yellow, Teal, DarkRed)
	Stellate(original, []int{0}, 0.3)

	var buf bytes.Buffer
	require.NoError(t, original.WritePLY(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "ply\nformat ascii 1.0\n"))

	loaded, err := ReadPLY(&buf)
	require.NoError(t, err)
	assert.Equal(t, original.Vertices, loaded.Vertices)
	require.Len(t, loaded.Faces, len(original.Faces))
	for i, f := range loaded.Faces {
		assert.Equal(t, original.Faces[i].Indices, f.Indices)
		assert.Equal(t, original.Faces[i].Color, f.Color)
		almostEqualVec(t, original.Faces[i].Normal, f.Normal)
	}
}

func TestPLYFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "shape.ply")
	require.NoError(t, Octahedron(1, SeaGreen).SavePLYFile(fileName))

	loaded, err := LoadPLYFile(fileName)
	require.NoError(t, err)
	assert.Len(t, loaded.Vertices, 6)
	assert.Len(t, loaded.Faces, 8)
	assertOutward(t, loaded)

	_, err = LoadPLYFile(filepath.Join(t.TempDir(), "missing.ply"))
	assert.Error(t, err)
}

const plyHeader = `ply
format ascii 1.0
element vertex 4
property float x
property float y
property float z
`

func TestReadPLYColors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []color.RGBA
	}{
		{
			name: "No colours",
			input: plyHeader + `element face 2
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
3 0 1 2
3 0 2 3
`,
			expected: []color.RGBA{Grey, Grey},
		},
		{
			name: "Face colours",
			input: plyHeader + `element face 1
property list uchar int vertex_indices
property uchar red
property uchar green
property uchar blue
end_header
0 0 0
1 0 0
1 1 0
0 1 0
4 0 1 2 3 10 20 30
`,
			expected: []color.RGBA{{R: 10, G: 20, B: 30, A: 255}},
		},
		{
			name: "Vertex colours",
			input: `ply
format ascii 1.0
element vertex 3
property float x
property float y
property float z
property uchar red
property uchar green
property uchar blue
element face 1
property list uchar int vertex_indices
end_header
0 0 0 255 0 0
1 0 0 0 255 0
0 1 0 0 0 255
3 0 1 2
`,
			expected: []color.RGBA{{R: 85, G: 85, B: 85, A: 255}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ReadPLY(strings.NewReader(tc.input))
			require.NoError(t, err)
			require.Len(t, s.Faces, len(tc.expected))
			for i, f := range s.Faces {
				assert.Equal(t, tc.expected[i], f.Color)
			}
			almostEqualVec(t, mgl64.Vec3{0, 0, 1}, s.Faces[0].Normal)
		})
	}
}

func TestReadPLYErrors(t *testing.T) {
	faces := `element face 1
property list uchar int vertex_indices
end_header
0 0 0
1 0 0
1 1 0
0 1 0
`

	testCases := []struct {
		name  string
		input string
		is    error // nil when any error will do
	}{
		{"Empty", "", nil},
		{"Not PLY", "obj\n", nil},
		{"Binary", "ply\nformat binary_little_endian 1.0\nend_header\n", nil},
		{"No end of header", plyHeader, nil},
		{"Short vertex", plyHeader + faces[:len(faces)-6] + "\n", nil},
		{"Missing face", plyHeader + faces, nil},
		{"Index out of range", plyHeader + faces + "3 0 1 9\n", ErrIndexOutOfRange},
		{"Two corners", plyHeader + faces + "2 0 1\n", ErrFaceTooSmall},
		{"Bad index", plyHeader + faces + "3 0 x 2\n", nil},
		{"Negative vertex count", "ply\nformat ascii 1.0\nelement vertex -1\nelement face 0\nend_header\n", nil},
		{"Negative face count", "ply\nformat ascii 1.0\nelement vertex 0\nelement face -3\nend_header\n", nil},
		{"Huge vertex count", "ply\nformat ascii 1.0\nelement vertex 4000000000\nproperty float x\nend_header\n0 0 0\n", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = ReadPLY(strings.NewReader(tc.input))
			})
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestReadPLYNoFaces(t *testing.T) {
	input := `ply
format ascii 1.0
element vertex 1
property float x
property float y
property float z
end_header
1 2 3
`
	s, err := ReadPLY(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, []mgl64.Vec3{{1, 2, 3}}, s.Vertices)
}
