// Package objfile implements spec.md §6/SPEC_FULL.md §6: a Wavefront OBJ
// reader producing ray-tracer triangle geometry wrapped in a Mesh. Grounded
// directly on the teacher's internal/loader/loader.go LoadModel — same
// bufio.Scanner + strings.Fields + strconv.ParseFloat vertex/normal/face
// parsing loop, adapted to emit Triangle/SmoothTriangle objects instead of
// GPU interleaved vertex buffers.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nicolasmd87/gophertrace/internal/logger"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/object"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/shape"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
	"go.uber.org/zap"
)

// Load parses an OBJ stream and returns a single *object.Object wrapping a
// Mesh of Triangle (or SmoothTriangle, when per-vertex normals are present)
// children, one per triangle; faces with more than three vertices are
// fan-triangulated.
func Load(r io.Reader) (*object.Object, error) {
	var vertices []vecmath.Tuple
	var normals []vecmath.Tuple

	mesh := object.NewMesh()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parsePoint(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objfile: line %d: %w", lineNo, err)
			}
			vertices = append(vertices, p)
		case "vn":
			n, err := parsePoint(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objfile: line %d: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "f":
			if err := addFace(mesh, fields[1:], vertices, normals); err != nil {
				return nil, fmt.Errorf("objfile: line %d: %w", lineNo, err)
			}
		default:
			// Unrecognized keywords (g, o, usemtl, mtllib, s, ...) are
			// silently skipped; the render core only needs geometry.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objfile: scan: %w", err)
	}

	logger.Log.Info("obj file loaded",
		zap.Int("vertices", len(vertices)),
		zap.Int("normals", len(normals)),
		zap.Int("triangles", len(mesh.Group().Children)))

	return mesh, nil
}

func parsePoint(fields []string) (vecmath.Tuple, error) {
	if len(fields) < 3 {
		return vecmath.Tuple{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Tuple{}, fmt.Errorf("invalid component %q: %w", fields[i], err)
		}
		vals[i] = v
	}
	return vecmath.Point(vals[0], vals[1], vals[2]), nil
}

type faceVertex struct {
	vertexIdx int
	normalIdx int // -1 when absent
}

func parseFaceVertex(field string) (faceVertex, error) {
	parts := strings.Split(field, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, fmt.Errorf("invalid vertex index %q: %w", parts[0], err)
	}
	fv := faceVertex{vertexIdx: v - 1, normalIdx: -1}
	if len(parts) == 3 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, fmt.Errorf("invalid normal index %q: %w", parts[2], err)
		}
		fv.normalIdx = n - 1
	}
	return fv, nil
}

// addFace fan-triangulates a face of 3+ vertices and appends one
// Triangle/SmoothTriangle child per resulting triangle, per spec.md's
// triangulation rule and the teacher's quad/fan-triangulation handling.
func addFace(mesh *object.Object, fields []string, vertices, normals []vecmath.Tuple) error {
	faceVerts := make([]faceVertex, len(fields))
	for i, f := range fields {
		fv, err := parseFaceVertex(f)
		if err != nil {
			return err
		}
		if fv.vertexIdx < 0 || fv.vertexIdx >= len(vertices) {
			return fmt.Errorf("vertex index %d out of range", fv.vertexIdx+1)
		}
		faceVerts[i] = fv
	}
	if len(faceVerts) < 3 {
		return fmt.Errorf("face has fewer than 3 vertices")
	}

	for i := 1; i < len(faceVerts)-1; i++ {
		a, b, c := faceVerts[0], faceVerts[i], faceVerts[i+1]
		tri := buildTriangle(a, b, c, vertices, normals)
		mesh.AddChild(tri)
	}
	return nil
}

func buildTriangle(a, b, c faceVertex, vertices, normals []vecmath.Tuple) *object.Object {
	p1, p2, p3 := vertices[a.vertexIdx], vertices[b.vertexIdx], vertices[c.vertexIdx]

	if a.normalIdx >= 0 && b.normalIdx >= 0 && c.normalIdx >= 0 &&
		a.normalIdx < len(normals) && b.normalIdx < len(normals) && c.normalIdx < len(normals) {
		n1, n2, n3 := normals[a.normalIdx], normals[b.normalIdx], normals[c.normalIdx]
		return object.New(shape.NewSmoothTriangle(p1, p2, p3, n1, n2, n3))
	}
	return object.New(shape.NewTriangle(p1, p2, p3))
}
