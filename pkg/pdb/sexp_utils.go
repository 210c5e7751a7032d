package pdb

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/OpenTraceDP/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceDP/pkg/pdb/sexpr"
)

// getString extracts the atom at index. Index 0 is the key.
func getString(l *sexpr.List, index int) (string, error) {
	item := l.Get(index)
	if item == nil {
		return "", fmt.Errorf("line %d: index %d out of bounds (length %d)", l.Line, index, l.Len())
	}
	atom, ok := item.(sexpr.Atom)
	if !ok {
		return "", fmt.Errorf("line %d: expected atom at index %d, got list", l.Line, index)
	}
	return string(atom), nil
}

func getInt(l *sexpr.List, index int) (int, error) {
	str, err := getString(l, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("line %d: failed to parse int %q: %w", l.Line, str, err)
	}
	return val, nil
}

func getFloat(l *sexpr.List, index int) (float64, error) {
	str, err := getString(l, index)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: failed to parse float %q: %w", l.Line, str, err)
	}
	return val, nil
}

// getIntPair reads (key A B).
func getIntPair(l *sexpr.List) (int, int, error) {
	a, err := getInt(l, 1)
	if err != nil {
		return 0, 0, err
	}
	b, err := getInt(l, 2)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// getRect reads (key x1 y1 x2 y2) in any corner order.
func getRect(l *sexpr.List) (geom.Rect, error) {
	var v [4]float64
	for i := range v {
		f, err := getFloat(l, i+1)
		if err != nil {
			return geom.Rect{}, fmt.Errorf("failed to parse %s: %w", l.Key(), err)
		}
		v[i] = f
	}
	return geom.NewRect(v[0], v[1], v[2], v[3]), nil
}

// getRects reads every (rect ...) child.
func getRects(l *sexpr.List) ([]geom.Rect, error) {
	var rects []geom.Rect
	for _, node := range l.FindAll("rect") {
		r, err := getRect(node)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// optString returns the first value of the (key value) child, or def.
func optString(l *sexpr.List, key, def string) string {
	if node, ok := l.Find(key); ok {
		if s, err := getString(node, 1); err == nil {
			return s
		}
	}
	return def
}

// reqString returns the first value of a required (key value) child.
func reqString(l *sexpr.List, key string) (string, error) {
	node, ok := l.Find(key)
	if !ok {
		return "", fmt.Errorf("line %d: missing required '%s' field", l.Line, key)
	}
	return getString(node, 1)
}

// reqInt returns the first value of a required (key N) child.
func reqInt(l *sexpr.List, key string) (int, error) {
	node, ok := l.Find(key)
	if !ok {
		return 0, fmt.Errorf("line %d: missing required '%s' field", l.Line, key)
	}
	return getInt(node, 1)
}
