package config

// Layout constants.
const (
	// CellWidth is the rendered width of one day cell, padding included.
	CellWidth = 4

	// PanelPaddingX is the horizontal padding inside the popup border.
	PanelPaddingX = 1

	// InputWidth is the width of the date text input.
	InputWidth = 12

	// MaxInputLength bounds typed dates (YYYY/MM/DD).
	MaxInputLength = 10
)

// Display markers.
const (
	PrevArrow   = "‹"
	NextArrow   = "›"
	ClearMarker = "[x]"
)
