package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// OBJFaceVertex references one corner of a face by 0-based indices into the
// position, texture coordinate and normal arrays. UV and Normal are -1 when absent.
type OBJFaceVertex struct {
	Position int
	UV       int
	Normal   int
}

// OBJData contains the raw geometry loaded from a Wavefront OBJ file.
// Polygons are fan-triangulated, so every face has exactly three corners.
type OBJData struct {
	Positions []core.Vec3
	UVs       []core.Vec2
	Normals   []core.Vec3
	Faces     [][3]OBJFaceVertex
}

// LoadOBJ loads an OBJ file from disk
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ reads the v, vt, vn and f statements of an OBJ stream. Other statements and
// comments are ignored. Malformed numbers and out-of-range indices are errors that name
// the offending line; faces may only reference elements defined above them.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		line := scanner.Text()
		if comment := strings.IndexByte(line, '#'); comment >= 0 {
			line = line[:comment]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			var v core.Vec3
			v, err = parseVec3(fields[1:])
			data.Positions = append(data.Positions, v)
		case "vn":
			var n core.Vec3
			n, err = parseVec3(fields[1:])
			data.Normals = append(data.Normals, n)
		case "vt":
			var uv core.Vec2
			uv, err = parseVec2(fields[1:])
			data.UVs = append(data.UVs, uv)
		case "f":
			err = data.parseFace(fields[1:])
		}

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	return data, nil
}

// parseFace resolves the corners of one polygon and appends its fan triangulation
func (d *OBJData) parseFace(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	corners := make([]OBJFaceVertex, len(fields))
	for i, field := range fields {
		corner, err := d.parseFaceVertex(field)
		if err != nil {
			return err
		}
		corners[i] = corner
	}

	for i := 1; i+1 < len(corners); i++ {
		d.Faces = append(d.Faces, [3]OBJFaceVertex{corners[0], corners[i], corners[i+1]})
	}
	return nil
}

// parseFaceVertex parses "p", "p/t", "p//n" or "p/t/n"
func (d *OBJData) parseFaceVertex(field string) (OBJFaceVertex, error) {
	parts := strings.Split(field, "/")
	if len(parts) > 3 {
		return OBJFaceVertex{}, fmt.Errorf("invalid face vertex %q", field)
	}

	corner := OBJFaceVertex{UV: -1, Normal: -1}

	var err error
	corner.Position, err = resolveIndex(parts[0], len(d.Positions), "position")
	if err != nil {
		return OBJFaceVertex{}, err
	}

	if len(parts) > 1 && parts[1] != "" {
		corner.UV, err = resolveIndex(parts[1], len(d.UVs), "texture coordinate")
		if err != nil {
			return OBJFaceVertex{}, err
		}
	}

	if len(parts) > 2 && parts[2] != "" {
		corner.Normal, err = resolveIndex(parts[2], len(d.Normals), "normal")
		if err != nil {
			return OBJFaceVertex{}, err
		}
	}

	return corner, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a 0-based one
func resolveIndex(field string, count int, kind string) (int, error) {
	index, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q: %w", kind, field, err)
	}

	resolved := index - 1
	if index < 0 {
		resolved = count + index
	}

	if index == 0 || resolved < 0 || resolved >= count {
		return 0, fmt.Errorf("%s index %d out of range (have %d)", kind, index, count)
	}
	return resolved, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	values, err := parseFloats(fields[:3])
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}

func parseVec2(fields []string) (core.Vec2, error) {
	if len(fields) < 2 {
		return core.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	values, err := parseFloats(fields[:2])
	if err != nil {
		return core.Vec2{}, err
	}
	return core.NewVec2(values[0], values[1]), nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		values[i] = value
	}
	return values, nil
}
