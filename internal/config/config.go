package config

const (
	WindowWidth  = 700
	WindowHeight = 600

	// Form layout metrics
	Margin = 16
	RowH   = 26
	RowGap = 6
	Pad    = 8

	// Debug font glyph metrics
	CharW = 8
	LineH = 16

	// Widget dimensions
	FieldW     = 96
	WideFieldW = 360
	ButtonPadX = 10
	CheckboxSz = 14
	RadioSz    = 14

	ScrollSpeed = 24

	// Status line
	StatusY = WindowHeight - 24
)
