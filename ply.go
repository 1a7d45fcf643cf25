package polyscene

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

const maxPreallocate = 1 << 16

func LoadPLYFile(fileName string) (*Shape, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	s, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing PLY file %s: %w", fileName, err)
	}
	return s, nil
}

// ReadPLY reads an ASCII PLY mesh. Face colours come from red/green/blue
// properties on the face element, or else the average of the vertex
// colours, or else grey.
func ReadPLY(reader io.Reader) (*Shape, error) {
	scanner := bufio.NewScanner(reader)

	var vertexCount, faceCount int
	var hasVertexColor, hasFaceColor bool
	var currentElement string

	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "ply" {
		return nil, fmt.Errorf("missing ply magic line")
	}

	// header
	headerDone := false
	for !headerDone && scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 2 || parts[1] != "ascii" {
				return nil, fmt.Errorf("unsupported PLY format %q", strings.Join(parts[1:], " "))
			}
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("bad element line %q", scanner.Text())
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, fmt.Errorf("bad %s count: %w", parts[1], err)
			}
			if count < 0 {
				return nil, fmt.Errorf("negative %s count %d", parts[1], count)
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				vertexCount = count
			case "face":
				faceCount = count
			}
		case "property":
			if len(parts) > 2 && (parts[2] == "red" || parts[2] == "diffuse_red") {
				switch currentElement {
				case "vertex":
					hasVertexColor = true
				case "face":
					hasFaceColor = true
				}
			}
		case "end_header":
			headerDone = true
		}
	}
	if !headerDone {
		return nil, fmt.Errorf("unexpected end of file while reading header")
	}

	// header counts only hint at capacity
	vertices := make([]mgl64.Vec3, 0, min(vertexCount, maxPreallocate))
	vertexColors := make([]color.RGBA, 0, min(vertexCount, maxPreallocate))
	for i := 0; i < vertexCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading vertices")
		}
		parts := strings.Fields(scanner.Text())
		want := 3
		if hasVertexColor {
			want = 6
		}
		if len(parts) < want {
			return nil, fmt.Errorf("invalid vertex data on line %d", i)
		}
		var v mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			f, err := strconv.ParseFloat(parts[axis], 64)
			if err != nil {
				return nil, fmt.Errorf("vertex %d: %w", i, err)
			}
			v[axis] = f
		}
		vertices = append(vertices, v)
		if hasVertexColor {
			c, err := parseRGB(parts[3:6])
			if err != nil {
				return nil, fmt.Errorf("vertex %d color: %w", i, err)
			}
			vertexColors = append(vertexColors, c)
		}
	}

	faces := make([][]int, 0, min(faceCount, maxPreallocate))
	colors := make([]color.RGBA, 0, min(faceCount, maxPreallocate))
	for i := 0; i < faceCount; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected end of file while reading faces")
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			return nil, fmt.Errorf("empty face line %d", i)
		}
		numFaceVerts, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		if numFaceVerts < 3 {
			return nil, fmt.Errorf("face %d has %d corners: %w", i, numFaceVerts, ErrFaceTooSmall)
		}
		want := numFaceVerts + 1
		if hasFaceColor {
			want += 3
		}
		if len(parts) < want {
			return nil, fmt.Errorf("invalid face data on line %d", i)
		}

		indices := make([]int, numFaceVerts)
		for j := range indices {
			indices[j], err = strconv.Atoi(parts[j+1])
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			if indices[j] < 0 || indices[j] >= len(vertices) {
				return nil, fmt.Errorf("face %d index %d: %w", i, indices[j], ErrIndexOutOfRange)
			}
		}

		var faceColor color.RGBA
		switch {
		case hasFaceColor:
			faceColor, err = parseRGB(parts[numFaceVerts+1 : numFaceVerts+4])
			if err != nil {
				return nil, fmt.Errorf("face %d color: %w", i, err)
			}
		case hasVertexColor:
			faceColor = averageColor(vertexColors, indices)
		default:
			faceColor = Grey
		}

		faces = append(faces, indices)
		colors = append(colors, faceColor)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from PLY source: %w", err)
	}

	if len(faces) == 0 {
		return &Shape{Vertices: vertices}, nil
	}
	return NewShape(vertices, faces, colors...)
}

func parseRGB(parts []string) (color.RGBA, error) {
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return color.RGBA{}, err
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

func averageColor(colors []color.RGBA, indices []int) color.RGBA {
	var r, g, b uint32
	for _, index := range indices {
		r += uint32(colors[index].R)
		g += uint32(colors[index].G)
		b += uint32(colors[index].B)
	}
	n := uint32(len(indices))
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}

func (s *Shape) SavePLYFile(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create PLY file %s: %w", fileName, err)
	}
	defer file.Close()

	return s.WritePLY(file)
}

// WritePLY writes s as ASCII PLY with the colour on the face element.
func (s *Shape) WritePLY(w io.Writer) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by polyscene with face colors")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(s.Vertices))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", len(s.Faces))
	_, _ = fmt.Fprintln(writer, "property list uchar int vertex_indices")
	_, _ = fmt.Fprintln(writer, "property uchar red")
	_, _ = fmt.Fprintln(writer, "property uchar green")
	_, _ = fmt.Fprintln(writer, "property uchar blue")
	_, _ = fmt.Fprintln(writer, "end_header")

	for _, v := range s.Vertices {
		_, _ = fmt.Fprintf(writer, "%s %s %s\n", formatFloat(v[0]), formatFloat(v[1]), formatFloat(v[2]))
	}

	for _, f := range s.Faces {
		_, _ = fmt.Fprintf(writer, "%d", f.Len())
		for _, index := range f.Indices {
			_, _ = fmt.Fprintf(writer, " %d", index)
		}
		_, _ = fmt.Fprintf(writer, " %d %d %d\n", f.Color.R, f.Color.G, f.Color.B)
	}

	return writer.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
