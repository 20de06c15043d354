// Package gridnet generates rectangular lattice street networks.
//
// A Grid describes a width×height lattice of intersections with real
// planar coordinates and 4-connected bidirectional streets. It exists for
// tests, benchmarks, and demos that need a regular network of known shape:
// the corner-to-corner shortest distance on a unit-weight W×H lattice is
// exactly (W-1)+(H-1).
package gridnet

import (
	"errors"
	"fmt"
	"math"

	"github.com/Powermatix/nawigacja-pag2/streetgraph"
)

// Sentinel errors for gridnet operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridnet: width and height must be positive")

	// ErrBadCellSize indicates a non-positive or NaN coordinate spacing.
	ErrBadCellSize = errors.New("gridnet: cell size must be positive")
)

// WeightFn computes the weight of the street between adjacent cells
// (x, y) and (nx, ny). It must return a non-negative value.
type WeightFn func(x, y, nx, ny int) float64

// UnitWeight assigns every street weight 1. This is the default.
func UnitWeight(_, _, _, _ int) float64 { return 1 }

// Option configures a Grid before construction.
type Option func(*Grid)

// WithCellSize sets the coordinate spacing between adjacent intersections
// (default 1). Panics on a non-positive or NaN size.
func WithCellSize(size float64) Option {
	return func(g *Grid) {
		if size <= 0 || math.IsNaN(size) {
			panic(ErrBadCellSize.Error())
		}
		g.cellSize = size
	}
}

// WithWeightFn sets the per-street weight function (default UnitWeight).
func WithWeightFn(fn WeightFn) Option {
	return func(g *Grid) { g.weightFn = fn }
}

// Grid describes a lattice street network. It is immutable once built;
// call Graph to materialize it.
type Grid struct {
	width, height int
	cellSize      float64
	weightFn      WeightFn
}

// New validates dimensions and applies options.
// Returns ErrBadDimensions if width or height is not positive.
// Complexity: O(1).
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadDimensions, width, height)
	}
	g := &Grid{
		width:    width,
		height:   height,
		cellSize: 1,
		weightFn: UnitWeight,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// NodeID returns the canonical node ID of cell (x, y): "x,y".
func NodeID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// Graph materializes the lattice as a street network: one node per cell
// at coordinate (x·cell, y·cell), and a bidirectional street between each
// pair of 4-connected neighbors, weighted by the grid's WeightFn and named
// after its endpoints.
//
// A WeightFn returning a negative value surfaces as
// streetgraph.ErrInvalidWeight.
// Complexity: O(W·H).
func (g *Grid) Graph() (*streetgraph.Graph, error) {
	sg := streetgraph.NewGraph()

	// 1) Insert every intersection with its planar coordinate.
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			id := NodeID(x, y)
			if err := sg.AddNode(id, float64(x)*g.cellSize, float64(y)*g.cellSize, id); err != nil {
				return nil, err
			}
		}
	}

	// 2) Connect east and north neighbors; bidirectional insertion covers
	//    the reverse directions, so each undirected street is added once.
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x+1 < g.width {
				if err := g.addStreet(sg, x, y, x+1, y); err != nil {
					return nil, err
				}
			}
			if y+1 < g.height {
				if err := g.addStreet(sg, x, y, x, y+1); err != nil {
					return nil, err
				}
			}
		}
	}

	return sg, nil
}

// addStreet inserts one bidirectional lattice street.
func (g *Grid) addStreet(sg *streetgraph.Graph, x, y, nx, ny int) error {
	name := fmt.Sprintf("%s-%s", NodeID(x, y), NodeID(nx, ny))

	return sg.AddEdge(NodeID(x, y), NodeID(nx, ny), g.weightFn(x, y, nx, ny), name)
}
