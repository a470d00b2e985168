package component

// Tag is a permanent story flag held by the player.
type Tag uint8

const (
	OpenedDoor Tag = iota
	ClosedDoor
	LightFire
	FerretInside
	FamilyShouldArrive
	FamilyArrived
)

var tagNames = [...]string{
	OpenedDoor:         "OpenedDoor",
	ClosedDoor:         "ClosedDoor",
	LightFire:          "LightFire",
	FerretInside:       "FerretInside",
	FamilyShouldArrive: "FamilyShouldArrive",
	FamilyArrived:      "FamilyArrived",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Tag(?)"
}
