package script

import (
	"embed"
	"fmt"
	"path"
	"strings"
)

//go:embed demos/*.yaml
var demoFS embed.FS

// Demos returns the names of the built-in scripts, one per kind.
func Demos() []string {
	entries, _ := demoFS.ReadDir("demos")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	return names
}

// Demo returns the built-in script called name.
func Demo(name string) (*Script, error) {
	data, err := demoFS.ReadFile("demos/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("script: no demo %q (have %s)", name, strings.Join(Demos(), ", "))
	}
	return Parse(data)
}
