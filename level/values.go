package level

import (
	"fmt"
	"strconv"
	"strings"
)

// Value types declared in an Ogmo project
const (
	ValueString  = "string"
	ValueText    = "text"
	ValueInteger = "integer"
	ValueBoolean = "boolean"
	ValueNumber  = "number"
)

// convertValue materialises a raw attribute according to its declared type
func convertValue(typ, raw string) (any, error) {
	switch typ {
	case ValueString, ValueText:
		return raw, nil
	case ValueInteger:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, err
		}
		return v, nil
	case ValueBoolean:
		return raw == "true", nil
	case ValueNumber:
		return strconv.ParseFloat(strings.TrimSpace(raw), 64)
	}
	return nil, fmt.Errorf("unknown value type %q", typ)
}

// declaredValues reads a <values> block: each child's element name is the type, its name attribute the key
func declaredValues(n *Node) map[string]string {
	out := make(map[string]string)
	if n == nil {
		return out
	}
	for _, c := range n.Children {
		if name, ok := c.Attrs["name"]; ok {
			out[name] = c.Name
		}
	}
	return out
}

// typedValues converts attrs of n, skipping reserved keys, using the declared types
func typedValues(n *Node, declared map[string]string, reserved ...string) (map[string]any, error) {
	skip := make(map[string]bool, len(reserved))
	for _, r := range reserved {
		skip[r] = true
	}
	var out map[string]any
	for key, raw := range n.Attrs {
		if skip[key] {
			continue
		}
		typ, ok := declared[key]
		if !ok {
			return nil, fmt.Errorf("<%s> unknown value %q", n.Name, key)
		}
		v, err := convertValue(typ, raw)
		if err != nil {
			return nil, fmt.Errorf("<%s> value %q: %w", n.Name, key, err)
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[key] = v
	}
	return out, nil
}
