package level

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/parameter"
)

var (
	ErrNoPlayer       = errors.New("level has no player object")
	ErrDegenerateRect = errors.New("rectangle with non-positive size")
	ErrUnknownLevel   = errors.New("unknown level")
)

// Instance is an object placed in an objects layer
type Instance struct {
	Type   string
	X, Y   int
	Width  int // zero when the instance uses its definition's size
	Height int
	Values map[string]any
}

// Tile is one tile reference in a tiles layer
type Tile struct {
	X, Y   int
	TX, TY int
	Set    string
}

// Layer holds the data of one project layer; which slice is populated depends on Type
type Layer struct {
	Name      string
	Type      LayerType
	Present   bool
	Rects     []core.Rect
	Instances []Instance
	Tiles     []Tile
}

// Level is a materialised Ogmo level in file coordinates
type Level struct {
	Name          string
	Width, Height int
	Values        map[string]any
	// Layers follow the project's layer order
	Layers []Layer
}

// Layer returns the named layer or nil
func (lv *Level) Layer(name string) *Layer {
	for i := range lv.Layers {
		if lv.Layers[i].Name == name {
			return &lv.Layers[i]
		}
	}
	return nil
}

// LoadLevel reads name.oel from the project directory
func (p *Project) LoadLevel(name string) (*Level, error) {
	known := false
	for _, l := range p.Levels {
		if l == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownLevel)
	}

	path := filepath.Join(p.Dir, name+".oel")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()
	return p.ParseLevel(name, f)
}

// ParseLevel decodes and validates a level document against the project definitions
func (p *Project) ParseLevel(name string, r io.Reader) (*Level, error) {
	root, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	lv := &Level{Name: name}
	if v, ok := root.ChildInt("width"); ok {
		lv.Width = v
	} else {
		lv.Width = p.Settings.DefaultWidth
	}
	if v, ok := root.ChildInt("height"); ok {
		lv.Height = v
	} else {
		lv.Height = p.Settings.DefaultHeight
	}
	if lv.Values, err = typedValues(root, p.Values, "width", "height"); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	for _, def := range p.Layers {
		layer := Layer{Name: def.Name, Type: def.Type}
		if n := root.Child(def.Name); n != nil {
			layer.Present = true
			if err := p.loadLayer(&layer, n); err != nil {
				return nil, fmt.Errorf("level %s layer %s: %w", name, def.Name, err)
			}
		}
		lv.Layers = append(lv.Layers, layer)
	}

	if err := lv.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return lv, nil
}

func (p *Project) loadLayer(layer *Layer, n *Node) error {
	switch layer.Type {
	case LayerGrid:
		for _, c := range n.Children {
			if c.Name != "rect" {
				continue
			}
			r, err := readRect(c)
			if err != nil {
				return err
			}
			layer.Rects = append(layer.Rects, r)
		}
	case LayerObjects:
		for _, c := range n.Children {
			def, ok := p.Objects[c.Name]
			if !ok {
				continue
			}
			inst, err := readInstance(c, def)
			if err != nil {
				return err
			}
			layer.Instances = append(layer.Instances, inst)
		}
	case LayerTiles:
		set := n.Attrs["set"]
		if set == "" {
			set = n.Attrs["tileset"]
		}
		for _, c := range n.Children {
			if c.Name != "tile" {
				continue
			}
			t := Tile{
				X:   c.IntOr("x", 0),
				Y:   c.IntOr("y", 0),
				TX:  c.IntOr("tx", 0),
				TY:  c.IntOr("ty", 0),
				Set: c.Attrs["set"],
			}
			if t.Set == "" {
				t.Set = set
			}
			layer.Tiles = append(layer.Tiles, t)
		}
	default:
		return fmt.Errorf("unknown layer type %q", layer.Type)
	}
	return nil
}

func readRect(n *Node) (core.Rect, error) {
	var r core.Rect
	var err error
	if r.X, err = n.Int("x"); err != nil {
		return r, err
	}
	if r.Y, err = n.Int("y"); err != nil {
		return r, err
	}
	if r.W, err = n.Int("w"); err != nil {
		return r, err
	}
	if r.H, err = n.Int("h"); err != nil {
		return r, err
	}
	return r, nil
}

func readInstance(n *Node, def ObjectDef) (Instance, error) {
	inst := Instance{Type: n.Name}
	var err error
	if inst.X, err = n.Int("x"); err != nil {
		return inst, err
	}
	if inst.Y, err = n.Int("y"); err != nil {
		return inst, err
	}
	inst.Width = n.IntOr("width", 0)
	inst.Height = n.IntOr("height", 0)
	if inst.Values, err = typedValues(n, def.Values, "x", "y", "width", "height", "id"); err != nil {
		return inst, err
	}
	return inst, nil
}

// Size returns the instance's own size or its definition's
func (inst Instance) Size(def ObjectDef) (int, int) {
	w, h := inst.Width, inst.Height
	if w <= 0 {
		w = def.Width
	}
	if h <= 0 {
		h = def.Height
	}
	return w, h
}

// Validate rejects levels the simulation cannot run
func (lv *Level) Validate() error {
	if lv.Width <= 0 || lv.Height <= 0 {
		return fmt.Errorf("level size %dx%d: %w", lv.Width, lv.Height, ErrDegenerateRect)
	}
	player := false
	for _, layer := range lv.Layers {
		for _, r := range layer.Rects {
			if !r.Valid() {
				return fmt.Errorf("grid rect %+v: %w", r, ErrDegenerateRect)
			}
		}
		for _, inst := range layer.Instances {
			if inst.Type == parameter.PlayerObject {
				player = true
			}
		}
	}
	if !player {
		return ErrNoPlayer
	}
	return nil
}
