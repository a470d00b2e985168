package gamemap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMarkerNotFound is returned by FindTile for an id absent from the map.
	ErrMarkerNotFound = errors.New("marker not found")
	// ErrRaggedMap is returned by Parse when rows differ in length.
	ErrRaggedMap = errors.New("map rows differ in length")
	// ErrUnknownGlyph is returned by Parse for a rune missing from the legend.
	ErrUnknownGlyph = errors.New("unknown map glyph")
)

// Legend maps layout runes to tiles. Marker runes name spawn points; the
// marker cell itself is given the mapped tile kind.
type Legend struct {
	Tiles   map[rune]TileKind
	Markers map[rune]TileKind
}

// GameMap holds the tile grid and named marker cells for the scene.
// It is read-only once play starts.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	markers       map[rune]Cell
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles, markers: make(map[rune]Cell)}
}

// Parse builds a GameMap from rows of layout runes.
func Parse(rows []string, legend Legend) (*GameMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse map: no rows")
	}
	width := len([]rune(rows[0]))
	m := New(width, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("parse map: row %d has %d cells, want %d: %w", y, len(runes), width, ErrRaggedMap)
		}
		for x, r := range runes {
			if kind, ok := legend.Tiles[r]; ok {
				m.Tiles[y][x] = MakeTile(kind)
				continue
			}
			kind, ok := legend.Markers[r]
			if !ok {
				return nil, fmt.Errorf("parse map: %q at (%d,%d): %w", r, x, y, ErrUnknownGlyph)
			}
			if prev, dup := m.markers[r]; dup {
				return nil, fmt.Errorf("parse map: marker %q at %s and (%d,%d)", r, prev, x, y)
			}
			m.Tiles[y][x] = MakeTile(kind)
			m.markers[r] = Cell{X: x, Y: y}
		}
	}
	return m, nil
}

// MustParse is Parse for compiled-in layouts; it panics on error.
func MustParse(layout string, legend Legend) *GameMap {
	m, err := Parse(strings.Split(strings.Trim(layout, "\n"), "\n"), legend)
	if err != nil {
		panic(err)
	}
	return m
}

// InBounds reports whether c is within the map boundaries.
func (m *GameMap) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// At returns a pointer to the tile at c. Panics if out of bounds.
func (m *GameMap) At(c Cell) *Tile {
	return &m.Tiles[c.Y][c.X]
}

// Set replaces the tile at c.
func (m *GameMap) Set(c Cell, t Tile) {
	m.Tiles[c.Y][c.X] = t
}

// IsWall reports whether c holds a wall. Out-of-bounds cells count as walls.
func (m *GameMap) IsWall(c Cell) bool {
	if !m.InBounds(c) {
		return true
	}
	return m.Tiles[c.Y][c.X].Wall
}

// Walkable returns true when c is in bounds and not a wall.
func (m *GameMap) Walkable(c Cell) bool {
	return !m.IsWall(c)
}

// FindTile returns the cell of the marker id.
func (m *GameMap) FindTile(id rune) (Cell, error) {
	c, ok := m.markers[id]
	if !ok {
		return NoCell, fmt.Errorf("find tile %q: %w", id, ErrMarkerNotFound)
	}
	return c, nil
}

// SetMarker places (or moves) the marker id at c.
func (m *GameMap) SetMarker(id rune, c Cell) {
	m.markers[id] = c
}
