package assets

import (
	"strings"
	"winternight/internal/gamemap"
)

// Marker runes placed in Layout. Each appears exactly once.
const (
	MarkerPlayer     = 'P'
	MarkerDoor       = 'D'
	MarkerFerret     = 'F'
	MarkerHearth     = 'H'
	MarkerSeat       = 'S'
	MarkerSecondSeat = 'T'
	MarkerFamily     = 'M'
	MarkerEntry      = 'E'
)

// Layout is the cabin in the snow: log walls with two windows, a rug, the
// hearth on the north wall and the only door facing south.
const Layout = `
^^^^^^^^^^^^^^^^^^^^
^,,,,,,,,,,,,,,,,,,^
^,,##############,,^
^,,#....H.......#,,^
^,,#.S......T...#,,^
^,,o............o,,^
^,,#..====......#,,^
^,,#..====..P...#,,^
^,,#.........E..#,,^
^,,######D#######,,^
^,,,,,,,,,,,,,,,,,,^
^,,,,,,,,F,,,,,,,,,^
^,,,,,,,,,,,,,,,,M,^
^^^^^^^^^^^^^^^^^^^^
`

// Legend maps Layout runes to tiles.
var Legend = gamemap.Legend{
	Tiles: map[rune]gamemap.TileKind{
		'#': gamemap.TileWall,
		'.': gamemap.TileFloor,
		',': gamemap.TileSnow,
		'=': gamemap.TileRug,
		'^': gamemap.TileTree,
		'o': gamemap.TileWindow,
	},
	Markers: map[rune]gamemap.TileKind{
		MarkerPlayer:     gamemap.TileFloor,
		MarkerDoor:       gamemap.TileFloor,
		MarkerHearth:     gamemap.TileFloor,
		MarkerSeat:       gamemap.TileFloor,
		MarkerSecondSeat: gamemap.TileFloor,
		MarkerEntry:      gamemap.TileFloor,
		MarkerFerret:     gamemap.TileSnow,
		MarkerFamily:     gamemap.TileSnow,
	},
}

// LoadMap parses Layout.
func LoadMap() (*gamemap.GameMap, error) {
	return gamemap.Parse(rows(Layout), Legend)
}

func rows(layout string) []string {
	return strings.Split(strings.Trim(layout, "\n"), "\n")
}
