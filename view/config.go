package view

// Config configures the view Model.
type Config struct {
	Style  Style
	KeyMap KeyMap

	// ShowSpaces draws highlighted spaces as '·' so they stay visible.
	ShowSpaces bool
}
