package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileSnow
	TileRug
	TileTree
	TileWindow
)

// Tile holds the kind and occupancy of one map cell.
type Tile struct {
	Kind TileKind
	Wall bool
}

// MakeWall returns a blocking log-wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Wall: true}
}

// MakeFloor returns a passable wooden floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor}
}

// MakeTile returns the tile for kind, walls and trees block.
func MakeTile(kind TileKind) Tile {
	switch kind {
	case TileWall, TileTree, TileWindow:
		return Tile{Kind: kind, Wall: true}
	}
	return Tile{Kind: kind}
}
