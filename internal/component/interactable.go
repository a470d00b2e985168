package component

// Interactable lets the player bump a character to read Message.
type Interactable struct {
	Message     string // empty when the character has nothing to say
	Interacting bool
}

// CanInteract reports whether bumping the character opens its message.
func (i Interactable) CanInteract() bool { return i.Message != "" }
