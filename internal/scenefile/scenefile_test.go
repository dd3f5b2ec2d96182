package scenefile

import (
	"strings"
	"testing"
)

const sampleScene = `
# a minimal two-sphere scene
define wall-material material color 0.8 0.8 0.8 ambient 0.1 diffuse 0.7
define floor-transform transform scale 10 0.01 10

camera 100 50 0.785 from 0 1.5 -5 to 0 1 0 up 0 1 0

add point-light at -10 10 -10 intensity 1 1 1

add sphere material wall-material transform floor-transform
add sphere transform floor-transform shadow false
`

func TestLoadBuildsWorldAndCamera(t *testing.T) {
	scene, err := Load(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if scene.Camera.HSize != 100 || scene.Camera.VSize != 50 {
		t.Errorf("unexpected camera size: %d x %d", scene.Camera.HSize, scene.Camera.VSize)
	}
	if len(scene.World.Objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(scene.World.Objects))
	}
	if len(scene.World.Lights) != 1 {
		t.Fatalf("expected 1 light, got %d", len(scene.World.Lights))
	}
	if scene.World.Objects[1].CastsShadow() {
		t.Error("second sphere should have shadow casting disabled")
	}
}

func TestLoadRejectsUnsupportedKeyword(t *testing.T) {
	src := "camera 10 10 1\nbogus-keyword foo\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected a parse error for an unsupported keyword")
	}
}

func TestLoadRequiresCamera(t *testing.T) {
	src := "add point-light at 0 0 0 intensity 1 1 1\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error when no camera directive is present")
	}
}

func TestLoadRejectsUndefinedMaterial(t *testing.T) {
	src := "camera 10 10 1\nadd sphere material nonexistent\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an undefined material reference")
	}
}

func TestLoadExtendLayersOntoBaseDefine(t *testing.T) {
	src := `
define base material color 0.5 0.5 0.5 ambient 0.2
define shiny extend base material reflective 0.9

camera 10 10 1
add sphere material shiny
`
	scene, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := scene.World.Objects[0].Material()
	if m.Ambient != 0.2 {
		t.Errorf("expected extend to keep base ambient 0.2, got %v", m.Ambient)
	}
	if m.Reflective != 0.9 {
		t.Errorf("expected extend to layer reflective 0.9, got %v", m.Reflective)
	}
}

func TestLoadTriangle(t *testing.T) {
	src := "camera 10 10 1\nadd triangle p1 0 1 0 p2 -1 0 0 p3 1 0 0\n"
	scene, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scene.World.Objects) != 1 {
		t.Fatalf("expected 1 object, got %d", len(scene.World.Objects))
	}
}

func TestLoadGroupNestsChildrenAndAppliesTransform(t *testing.T) {
	src := `
define shift transform translate 5 0 0

camera 10 10 1
add group begin
add sphere
add sphere
add group end transform shift
`
	scene, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scene.World.Objects) != 1 {
		t.Fatalf("expected the group as a single top-level object, got %d", len(scene.World.Objects))
	}
	g := scene.World.Objects[0]
	if !g.IsGroup() {
		t.Fatal("expected a group object")
	}
	if len(g.Group().Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(g.Group().Children))
	}
}

func TestLoadRejectsUnterminatedGroup(t *testing.T) {
	src := "camera 10 10 1\nadd group begin\nadd sphere\n"
	if _, err := Load(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for an unterminated group block")
	}
}

func TestLoadMaterialPatternBlock(t *testing.T) {
	src := "camera 10 10 1\nadd sphere material pattern stripe 1 1 1 0 0 0\n"
	_, err := Load(strings.NewReader(src))
	if err == nil {
		t.Fatal("expected \"pattern\" to only be valid inside a define material, got no error")
	}

	src2 := `
define striped material pattern stripe 1 1 1 0 0 0 transform scale 0.5 0.5 0.5 ambient 0.3

camera 10 10 1
add sphere material striped
`
	scene, err := Load(strings.NewReader(src2))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	m := scene.World.Objects[0].Material()
	if m.Pattern == nil {
		t.Fatal("expected a pattern to be set")
	}
	if m.Ambient != 0.3 {
		t.Errorf("expected the ambient field after the pattern block to still be parsed, got %v", m.Ambient)
	}
}
