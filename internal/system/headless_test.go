package system

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "go-alien-invasion"

// TestSystemsBuildWithoutGraphicsBackend проходит по импортам систем, игрового
// ядра и всех их локальных зависимостей: они должны тестироваться без окна и GPU.
func TestSystemsBuildWithoutGraphicsBackend(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	queue := []string{modulePath + "/internal/system", modulePath + "/internal/app"}
	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if seen[pkg] {
			continue
		}
		seen[pkg] = true

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(pkg, modulePath+"/")))
		for _, imp := range packageImports(t, dir) {
			switch {
			case strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten"),
				strings.HasPrefix(imp, "github.com/gen2brain/raylib-go"):
				t.Errorf("%s imports graphics backend %s", pkg, imp)
			case strings.HasPrefix(imp, modulePath+"/"):
				queue = append(queue, imp)
			}
		}
	}
}

func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}

	var imports []string
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, spec := range f.Imports {
			path, err := strconv.Unquote(spec.Path.Value)
			if err != nil {
				t.Fatalf("bad import in %s: %v", name, err)
			}
			imports = append(imports, path)
		}
	}
	return imports
}
