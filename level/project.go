package level

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrNoProject = errors.New("no .oep project file")
	ErrNoLevels  = errors.New("no .oel level files")
)

// LayerType is the kind of data a layer holds
type LayerType string

const (
	LayerGrid    LayerType = "grid"
	LayerObjects LayerType = "objects"
	LayerTiles   LayerType = "tiles"
)

// Settings are the project-wide level size limits
type Settings struct {
	DefaultWidth, DefaultHeight int
	MinWidth, MinHeight         int
	MaxWidth, MaxHeight         int
	WorkingDirectory            string
}

type Tileset struct {
	Name       string
	Image      string
	TileWidth  int
	TileHeight int
}

// ObjectDef describes an object type placeable in objects layers
type ObjectDef struct {
	Name   string
	Image  string
	Width  int
	Height int
	// Values maps custom attribute names to their declared type
	Values map[string]string
}

type LayerDef struct {
	Name     string
	Type     LayerType
	GridSize int
}

// Project is a materialised Ogmo project
type Project struct {
	Dir      string
	Name     string
	Settings Settings
	Values   map[string]string
	Tilesets map[string]Tileset
	Objects  map[string]ObjectDef
	Layers   []LayerDef
	// Levels are level names (file stem) in load order
	Levels []string
}

// LoadProject reads the first .oep file in dir and indexes the .oel files beside it
func LoadProject(dir string) (*Project, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read project dir %s: %w", dir, err)
	}

	var projectFile string
	var levels []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case projectFile == "" && strings.HasSuffix(name, ".oep"):
			projectFile = name
		case strings.HasSuffix(name, ".oel") && !strings.Contains(name, " "):
			levels = append(levels, strings.TrimSuffix(name, ".oel"))
		}
	}
	if projectFile == "" {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoProject)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoLevels)
	}
	sort.Strings(levels)

	f, err := os.Open(filepath.Join(dir, projectFile))
	if err != nil {
		return nil, fmt.Errorf("open project %s: %w", projectFile, err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse project %s: %w", projectFile, err)
	}
	p, err := materialiseProject(root)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", projectFile, err)
	}
	p.Dir = dir
	p.Levels = levels
	return p, nil
}

func materialiseProject(root *Node) (*Project, error) {
	p := &Project{
		Tilesets: make(map[string]Tileset),
		Objects:  make(map[string]ObjectDef),
	}
	if n := root.Child("name"); n != nil {
		p.Name = n.Content()
	}
	p.Settings = loadSettings(root.Child("settings"))
	p.Values = declaredValues(root.Child("values"))

	if ts := root.Child("tilesets"); ts != nil {
		for _, n := range ts.Children {
			if n.Name != "tileset" {
				continue
			}
			t := Tileset{
				Name:       n.Attrs["name"],
				Image:      n.Attrs["image"],
				TileWidth:  n.IntOr("tileWidth", 0),
				TileHeight: n.IntOr("tileHeight", 0),
			}
			p.Tilesets[t.Name] = t
		}
	}

	for _, n := range root.FindAll("object") {
		def := ObjectDef{
			Name:   n.Attrs["name"],
			Image:  n.Attrs["image"],
			Width:  n.IntOr("width", 0),
			Height: n.IntOr("height", 0),
			Values: declaredValues(n.Child("values")),
		}
		if def.Name == "" {
			return nil, errors.New("object without name")
		}
		if def.Width <= 0 || def.Height <= 0 {
			return nil, fmt.Errorf("object %q: %w", def.Name, ErrDegenerateRect)
		}
		p.Objects[def.Name] = def
	}

	if ls := root.Child("layers"); ls != nil {
		for _, n := range ls.Children {
			switch LayerType(n.Name) {
			case LayerGrid, LayerObjects, LayerTiles:
				p.Layers = append(p.Layers, LayerDef{
					Name:     n.Attrs["name"],
					Type:     LayerType(n.Name),
					GridSize: n.IntOr("gridSize", 0),
				})
			}
		}
	}
	return p, nil
}

func loadSettings(n *Node) Settings {
	s := Settings{DefaultWidth: 640, DefaultHeight: 480}
	if n != nil {
		read := func(name string, dst *int) {
			if v, ok := n.ChildInt(name); ok {
				*dst = v
			}
		}
		read("defaultWidth", &s.DefaultWidth)
		read("defaultHeight", &s.DefaultHeight)
		read("minWidth", &s.MinWidth)
		read("minHeight", &s.MinHeight)
		read("maxWidth", &s.MaxWidth)
		read("maxHeight", &s.MaxHeight)
		if wd := n.Find("workingDirectory"); wd != nil {
			s.WorkingDirectory = wd.Content()
		}
	}
	if s.MaxWidth == 0 {
		s.MaxWidth = s.DefaultWidth
	}
	if s.MaxHeight == 0 {
		s.MaxHeight = s.DefaultHeight
	}
	if s.MinWidth == 0 {
		s.MinWidth = s.DefaultWidth
	}
	if s.MinHeight == 0 {
		s.MinHeight = s.DefaultHeight
	}
	return s
}
