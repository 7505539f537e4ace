package game

// Window defaults.
const (
	WindowWidth  = 1000
	WindowHeight = 700
	WindowTitle  = "TRON 3D: High-Speed Battle"
)

// Stream buffer capacity in vertices; grows on demand.
const InitialVertexCapacity = 16384

// Font atlas layout: printable ASCII (32..127) rasterized from basicfont 7x13.
const (
	FontFirstChar = 32
	FontCellW     = 7
	FontCellH     = 13
	FontAscent    = 11
	FontCols      = 32
	FontRows      = 3
	FontAtlasW    = FontCellW * FontCols // 224
	FontAtlasH    = FontCellH * FontRows // 39
)

// Crash feedback.
const (
	CrashShakeIntensity = 1.2
	CrashShakeDuration  = 0.35
)
