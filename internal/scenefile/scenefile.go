// Package scenefile implements spec.md §6/SPEC_FULL.md §6: a minimal
// line-oriented scene description parser building a World and Camera.
// Deliberately simple — covers add/define/extend, transform lists and
// pattern blocks without a full macro-expansion engine; unsupported
// keywords are reported as parse errors that abort before rendering, per
// spec.md §7.
package scenefile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nicolasmd87/gophertrace/internal/objfile"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/camera"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/light"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/material"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/object"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/pattern"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/shape"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/world"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Scene is the parse result: a renderable World plus the Camera the
// description configured.
type Scene struct {
	World  *world.World
	Camera *camera.Camera
}

// define is a named, reusable material or transform. extend (below) copies
// one of these and layers further fields on top, per spec.md §6.
type define struct {
	transform vecmath.Transform
	material  material.Material
}

// Load parses a scene description from r.
func Load(r io.Reader) (*Scene, error) {
	w := world.New()
	var cam *camera.Camera
	defines := map[string]define{}
	var groupStack []*object.Object

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "camera":
			c, err := parseCamera(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("scenefile: line %d: %w", lineNo, err)
			}
			cam = c
		case "add":
			if err := parseAdd(w, &groupStack, defines, fields[1:]); err != nil {
				return nil, fmt.Errorf("scenefile: line %d: %w", lineNo, err)
			}
		case "define":
			name, d, err := parseDefine(defines, fields[1:])
			if err != nil {
				return nil, fmt.Errorf("scenefile: line %d: %w", lineNo, err)
			}
			defines[name] = d
		default:
			return nil, fmt.Errorf("scenefile: line %d: unsupported keyword %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scenefile: scan: %w", err)
	}
	if cam == nil {
		return nil, fmt.Errorf("scenefile: no camera directive found")
	}
	if len(groupStack) > 0 {
		return nil, fmt.Errorf("scenefile: %d unterminated group block(s)", len(groupStack))
	}

	return &Scene{World: w, Camera: cam}, nil
}

// parseCamera handles: camera <hsize> <vsize> <fov> from <x y z> to <x y z> up <x y z>
func parseCamera(fields []string) (*camera.Camera, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("camera: expected hsize vsize fov")
	}
	hsize, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("camera: invalid hsize: %w", err)
	}
	vsize, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("camera: invalid vsize: %w", err)
	}
	fov, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, fmt.Errorf("camera: invalid fov: %w", err)
	}

	from := vecmath.Point(0, 0, 0)
	to := vecmath.Point(0, 0, -1)
	up := vecmath.Vector(0, 1, 0)

	rest := fields[3:]
	for len(rest) > 0 {
		switch rest[0] {
		case "from":
			v, n, err := parseVector3(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("camera from: %w", err)
			}
			from = vecmath.Point(v.X, v.Y, v.Z)
			rest = rest[n+1:]
		case "to":
			v, n, err := parseVector3(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("camera to: %w", err)
			}
			to = vecmath.Point(v.X, v.Y, v.Z)
			rest = rest[n+1:]
		case "up":
			v, n, err := parseVector3(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("camera up: %w", err)
			}
			up = vecmath.Vector(v.X, v.Y, v.Z)
			rest = rest[n+1:]
		default:
			return nil, fmt.Errorf("camera: unexpected token %q", rest[0])
		}
	}

	cam := camera.New(hsize, vsize, fov*math.Pi/180)
	cam.SetTransform(vecmath.TransformFromMatrix(vecmath.View(from, to, up)))
	return cam, nil
}

func parseVector3(fields []string) (vecmath.Tuple, int, error) {
	if len(fields) < 3 {
		return vecmath.Tuple{}, 0, fmt.Errorf("expected 3 components")
	}
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Tuple{}, 0, fmt.Errorf("invalid component %q: %w", fields[i], err)
		}
		vals[i] = v
	}
	return vecmath.Tuple{X: vals[0], Y: vals[1], Z: vals[2]}, 3, nil
}

// parseAdd handles:
//
//	add point-light at <x y z> intensity <r g b>
//	add area-light corner <x y z> uvec <x y z> usteps <n> vvec <x y z> vsteps <n> intensity <r g b>
//	add sphere|plane|cube|cylinder [material <name>] [transform <name>] [shadow false]
//	add triangle p1 <x y z> p2 <x y z> p3 <x y z> [material <name>] [transform <name>] [shadow false]
//	add mesh file <path> [material <name>] [transform <name>] [shadow false]
//	add group begin
//	add group end [material <name>] [transform <name>] [shadow false]
//
// A group/mesh nests whatever "add" directives appear between its begin
// and end as children rather than top-level world objects; group end's
// optional transform, per spec.md §9, descends into every child collected
// since begin.
func parseAdd(w *world.World, groupStack *[]*object.Object, defines map[string]define, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("add: missing entity kind")
	}
	switch fields[0] {
	case "point-light":
		return parsePointLight(w, fields[1:])
	case "area-light":
		return parseAreaLight(w, fields[1:])
	case "sphere", "plane", "cube", "cylinder":
		return parsePrimitive(w, *groupStack, defines, fields[0], fields[1:])
	case "triangle":
		return parseTriangle(w, *groupStack, defines, fields[1:])
	case "mesh":
		return parseMesh(w, *groupStack, defines, fields[1:])
	case "group":
		return parseGroup(w, groupStack, defines, fields[1:])
	default:
		return fmt.Errorf("add: unsupported entity kind %q", fields[0])
	}
}

// addToTarget appends o to the innermost open group, or to the world
// directly when no group is open.
func addToTarget(w *world.World, groupStack []*object.Object, o *object.Object) {
	if len(groupStack) > 0 {
		groupStack[len(groupStack)-1].AddChild(o)
		return
	}
	w.AddObject(o)
}

func parsePointLight(w *world.World, fields []string) error {
	var pos vecmath.Tuple
	var intensity color.Color
	haveIntensity := false

	for len(fields) > 0 {
		switch fields[0] {
		case "at":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return fmt.Errorf("point-light at: %w", err)
			}
			pos = vecmath.Point(v.X, v.Y, v.Z)
			fields = fields[n+1:]
		case "intensity":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return fmt.Errorf("point-light intensity: %w", err)
			}
			intensity = color.New(v.X, v.Y, v.Z)
			haveIntensity = true
			fields = fields[n+1:]
		default:
			return fmt.Errorf("point-light: unexpected token %q", fields[0])
		}
	}
	if !haveIntensity {
		intensity = color.White()
	}
	w.AddLight(light.NewPointLight(pos, intensity))
	return nil
}

func parseAreaLight(w *world.World, fields []string) error {
	corner := vecmath.Point(0, 0, 0)
	uvec := vecmath.Vector(1, 0, 0)
	vvec := vecmath.Vector(0, 1, 0)
	usteps, vsteps := 1, 1
	intensity := color.White()

	for len(fields) > 0 {
		switch fields[0] {
		case "corner":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return err
			}
			corner = vecmath.Point(v.X, v.Y, v.Z)
			fields = fields[n+1:]
		case "uvec":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return err
			}
			uvec = vecmath.Vector(v.X, v.Y, v.Z)
			fields = fields[n+1:]
		case "vvec":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return err
			}
			vvec = vecmath.Vector(v.X, v.Y, v.Z)
			fields = fields[n+1:]
		case "usteps":
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("usteps: %w", err)
			}
			usteps = n
			fields = fields[2:]
		case "vsteps":
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return fmt.Errorf("vsteps: %w", err)
			}
			vsteps = n
			fields = fields[2:]
		case "intensity":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return err
			}
			intensity = color.New(v.X, v.Y, v.Z)
			fields = fields[n+1:]
		default:
			return fmt.Errorf("area-light: unexpected token %q", fields[0])
		}
	}
	w.AddLight(light.NewAreaLight(corner, uvec, vvec, usteps, vsteps, intensity))
	return nil
}

func newShape(kind string) shape.Shape {
	switch kind {
	case "sphere":
		return shape.NewSphere()
	case "plane":
		return shape.NewPlane()
	case "cube":
		return shape.NewCube()
	case "cylinder":
		return shape.NewCylinder()
	}
	return nil
}

func parsePrimitive(w *world.World, groupStack []*object.Object, defines map[string]define, kind string, fields []string) error {
	o := object.New(newShape(kind))
	if err := applyObjectModifiers(o, defines, fields); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	addToTarget(w, groupStack, o)
	return nil
}

// parseTriangle handles: triangle p1 <x y z> p2 <x y z> p3 <x y z> ...
func parseTriangle(w *world.World, groupStack []*object.Object, defines map[string]define, fields []string) error {
	var p1, p2, p3 vecmath.Tuple
	have := 0

points:
	for len(fields) > 0 {
		switch fields[0] {
		case "p1", "p2", "p3":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return fmt.Errorf("triangle %s: %w", fields[0], err)
			}
			p := vecmath.Point(v.X, v.Y, v.Z)
			switch fields[0] {
			case "p1":
				p1 = p
			case "p2":
				p2 = p
			case "p3":
				p3 = p
			}
			have++
			fields = fields[n+1:]
		default:
			break points
		}
	}
	if have != 3 {
		return fmt.Errorf("triangle: expected p1, p2 and p3")
	}

	o := object.New(shape.NewTriangle(p1, p2, p3))
	if err := applyObjectModifiers(o, defines, fields); err != nil {
		return fmt.Errorf("triangle: %w", err)
	}
	addToTarget(w, groupStack, o)
	return nil
}

// parseMesh handles: mesh file <path> ... — the referenced OBJ file is
// loaded via internal/objfile, producing a Mesh of Triangle/SmoothTriangle
// children that the subsequent material/transform/shadow fields apply to
// as a whole (transform descends into every triangle, per spec.md §9).
func parseMesh(w *world.World, groupStack []*object.Object, defines map[string]define, fields []string) error {
	if len(fields) < 2 || fields[0] != "file" {
		return fmt.Errorf("mesh: expected file <path>")
	}
	path := fields[1]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	defer f.Close()

	o, err := objfile.Load(f)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	if err := applyObjectModifiers(o, defines, fields[2:]); err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	addToTarget(w, groupStack, o)
	return nil
}

// parseGroup handles the two halves of a group block: "begin" opens a
// fresh composite object that subsequent add directives nest into, "end"
// closes it, applies any material/transform/shadow fields to the now-
// complete set of children, and attaches the group to whatever it nests
// under (an enclosing group, or the world).
func parseGroup(w *world.World, groupStack *[]*object.Object, defines map[string]define, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("group: expected begin or end")
	}
	switch fields[0] {
	case "begin":
		*groupStack = append(*groupStack, object.NewGroup())
		return nil
	case "end":
		if len(*groupStack) == 0 {
			return fmt.Errorf("group: end without matching begin")
		}
		g := (*groupStack)[len(*groupStack)-1]
		*groupStack = (*groupStack)[:len(*groupStack)-1]
		if err := applyObjectModifiers(g, defines, fields[1:]); err != nil {
			return fmt.Errorf("group: %w", err)
		}
		addToTarget(w, *groupStack, g)
		return nil
	default:
		return fmt.Errorf("group: unexpected token %q", fields[0])
	}
}

// applyObjectModifiers handles the material/transform/shadow fields common
// to every add kind (and to a closing group end).
func applyObjectModifiers(o *object.Object, defines map[string]define, fields []string) error {
	for len(fields) > 0 {
		switch fields[0] {
		case "material":
			if len(fields) < 2 {
				return fmt.Errorf("material needs a name")
			}
			d, ok := defines[fields[1]]
			if !ok {
				return fmt.Errorf("undefined material %q", fields[1])
			}
			o.SetMaterial(d.material)
			fields = fields[2:]
		case "transform":
			if len(fields) < 2 {
				return fmt.Errorf("transform needs a name")
			}
			d, ok := defines[fields[1]]
			if !ok {
				return fmt.Errorf("undefined transform %q", fields[1])
			}
			o.SetTransform(d.transform)
			fields = fields[2:]
		case "shadow":
			if len(fields) < 2 {
				return fmt.Errorf("shadow needs true/false")
			}
			o.SetCastsShadow(fields[1] == "true")
			fields = fields[2:]
		default:
			return fmt.Errorf("unexpected token %q", fields[0])
		}
	}
	return nil
}

// parseDefine handles:
//
//	define <name> material ...
//	define <name> transform ...
//	define <name> extend <base> material ...
//	define <name> extend <base> transform ...
//
// extend copies an existing define and layers the following material or
// transform fields on top of it, per spec.md §6.
func parseDefine(defines map[string]define, fields []string) (string, define, error) {
	if len(fields) < 2 {
		return "", define{}, fmt.Errorf("define: expected name and kind")
	}
	name := fields[0]
	switch fields[1] {
	case "material":
		m, err := parseMaterial(fields[2:])
		return name, define{material: m}, err
	case "transform":
		tr, err := parseTransformList(fields[2:])
		return name, define{transform: tr}, err
	case "extend":
		if len(fields) < 3 {
			return "", define{}, fmt.Errorf("define: extend needs a base name")
		}
		base, ok := defines[fields[2]]
		if !ok {
			return "", define{}, fmt.Errorf("define: undefined base %q", fields[2])
		}
		d := base
		rest := fields[3:]
		if len(rest) == 0 {
			return name, d, nil
		}
		switch rest[0] {
		case "material":
			m, err := parseMaterialFields(d.material, rest[1:])
			if err != nil {
				return "", define{}, err
			}
			d.material = m
		case "transform":
			tr, err := parseTransformListFrom(d.transform, rest[1:])
			if err != nil {
				return "", define{}, err
			}
			d.transform = tr
		default:
			return "", define{}, fmt.Errorf("define: extend: unexpected token %q", rest[0])
		}
		return name, d, nil
	default:
		return "", define{}, fmt.Errorf("define: unsupported kind %q", fields[1])
	}
}

// parseMaterial handles: color <r g b> | pattern <kind> <r g b> <r g b>
// [transform ...], plus the scalar fields ambient/diffuse/specular/
// shininess/reflective/transparency/refractive-index.
func parseMaterial(fields []string) (material.Material, error) {
	return parseMaterialFields(material.Default(), fields)
}

func parseMaterialFields(m material.Material, fields []string) (material.Material, error) {
	for len(fields) > 0 {
		tok := fields[0]
		switch tok {
		case "color":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return m, err
			}
			m.Color = color.New(v.X, v.Y, v.Z)
			m.Pattern = pattern.NewPatternObject(pattern.Plain(m.Color))
			fields = fields[n+1:]
			continue
		case "pattern":
			po, n, err := parsePattern(fields[1:])
			if err != nil {
				return m, fmt.Errorf("pattern: %w", err)
			}
			m.Pattern = po
			fields = fields[1+n:]
			continue
		}

		if len(fields) < 2 {
			return m, fmt.Errorf("material: %q needs a value", tok)
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return m, fmt.Errorf("material: invalid value for %q: %w", tok, err)
		}
		switch tok {
		case "ambient":
			m.Ambient = val
		case "diffuse":
			m.Diffuse = val
		case "specular":
			m.Specular = val
		case "shininess":
			m.Shininess = val
		case "reflective":
			m.Reflective = val
		case "transparency":
			m.Transparency = val
		case "refractive-index":
			m.RefractiveIndex = val
		default:
			return m, fmt.Errorf("material: unsupported field %q", tok)
		}
		fields = fields[2:]
	}
	return m, nil
}

// parsePattern handles: <kind> <r g b> <r g b> [transform <ops>...] where
// kind is one of stripe/gradient/ring/checker. It returns the number of
// fields consumed so the caller (embedded inside a material definition)
// can keep parsing whatever follows.
func parsePattern(fields []string) (*pattern.PatternObject, int, error) {
	if len(fields) < 1 {
		return nil, 0, fmt.Errorf("expected a pattern kind")
	}
	kind := fields[0]

	a, na, err := parseVector3(fields[1:])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: color a: %w", kind, err)
	}
	b, nb, err := parseVector3(fields[1+na:])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: color b: %w", kind, err)
	}
	consumed := 1 + na + nb

	var p pattern.Pattern
	switch kind {
	case "stripe":
		p = pattern.Stripe(color.New(a.X, a.Y, a.Z), color.New(b.X, b.Y, b.Z))
	case "gradient":
		p = pattern.Gradient(color.New(a.X, a.Y, a.Z), color.New(b.X, b.Y, b.Z))
	case "ring":
		p = pattern.Ring(color.New(a.X, a.Y, a.Z), color.New(b.X, b.Y, b.Z))
	case "checker":
		p = pattern.Checker(color.New(a.X, a.Y, a.Z), color.New(b.X, b.Y, b.Z))
	default:
		return nil, 0, fmt.Errorf("unsupported kind %q", kind)
	}

	po := pattern.NewPatternObject(p)
	rest := fields[consumed:]
	if len(rest) > 0 && rest[0] == "transform" {
		tr, n, err := parseTransformOps(vecmath.NewTransform(), rest[1:])
		if err != nil {
			return nil, 0, fmt.Errorf("%s transform: %w", kind, err)
		}
		po.Transform = tr
		consumed += 1 + n
	}
	return po, consumed, nil
}

// parseTransformList handles a chained sequence spanning the rest of the
// line — translate <x y z> | scale <x y z> | rotate-x|y|z <radians> —
// erroring on any trailing token it doesn't recognize.
func parseTransformList(fields []string) (vecmath.Transform, error) {
	return parseTransformListFrom(vecmath.NewTransform(), fields)
}

// parseTransformListFrom is parseTransformList starting from an existing
// transform instead of identity, used by "extend ... transform" to layer
// further ops onto a base define's transform.
func parseTransformListFrom(base vecmath.Transform, fields []string) (vecmath.Transform, error) {
	t, n, err := parseTransformOps(base, fields)
	if err != nil {
		return t, err
	}
	if n != len(fields) {
		return t, fmt.Errorf("transform: unexpected token %q", fields[n])
	}
	return t, nil
}

// parseTransformOps consumes as many leading transform ops as it can,
// stopping (without error) at the first token it doesn't recognize, and
// reporting how many fields it consumed. This bounded form lets a pattern
// block's own "transform ops..." clause live inside a larger material
// definition without swallowing the fields that follow it.
func parseTransformOps(base vecmath.Transform, fields []string) (vecmath.Transform, int, error) {
	t := base
	consumed := 0
	for len(fields) > 0 {
		switch fields[0] {
		case "translate":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return t, consumed, err
			}
			t = t.Translate(v.X, v.Y, v.Z)
			fields = fields[n+1:]
			consumed += n + 1
		case "scale":
			v, n, err := parseVector3(fields[1:])
			if err != nil {
				return t, consumed, err
			}
			t = t.Scale(v.X, v.Y, v.Z)
			fields = fields[n+1:]
			consumed += n + 1
		case "rotate-x", "rotate-y", "rotate-z":
			if len(fields) < 2 {
				return t, consumed, fmt.Errorf("%q needs a radian value", fields[0])
			}
			r, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return t, consumed, fmt.Errorf("invalid angle: %w", err)
			}
			switch fields[0] {
			case "rotate-x":
				t = t.RotateX(r)
			case "rotate-y":
				t = t.RotateY(r)
			case "rotate-z":
				t = t.RotateZ(r)
			}
			fields = fields[2:]
			consumed += 2
		default:
			return t, consumed, nil
		}
	}
	return t, consumed, nil
}
