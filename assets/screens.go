package assets

// Screen is a full-screen overlay shown by a ShowScreen action.
type Screen struct {
	Title string
	Body  string
	Hold  float64 // seconds before confirm may dismiss it
}

// Screen indices used by the scene scripts.
const (
	ScreenIntro = iota
	ScreenLater
	ScreenEnding
)

// Screens holds the overlays in index order.
var Screens = []Screen{
	ScreenIntro: {
		Title: "Winter Night",
		Body:  "The storm has been blowing for three days. The woodpile is low and the cabin is quiet.\n\nSomething is scratching at the door.",
		Hold:  1.5,
	},
	ScreenLater: {
		Title: "Later",
		Body:  "The snow keeps falling. Out past the trees, small shapes follow a line of tracks toward the light.",
		Hold:  1.0,
	},
	ScreenEnding: {
		Title: "Warm",
		Body:  "Nobody says much after that. The fire pops, the ferrets doze, and the storm gives up a little before dawn.\n\nThank you for playing.",
		Hold:  2.0,
	},
}

