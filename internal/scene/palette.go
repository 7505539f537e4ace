package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Float returns the colour as 0..1 floats.
func (c RGB) Float() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// Scale multiplies each channel by k (0..1).
func (c RGB) Scale(k float64) RGB {
	if k <= 0 {
		return RGB{}
	}
	if k >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
	}
}

var Palette = struct {
	Background RGB
	Grid       RGB
	Player     RGB
	Agent      RGB
	Win        RGB
	Lose       RGB
	Text       RGB
}{
	Background: RGB{R: 0, G: 13, B: 26},
	Grid:       RGB{R: 0, G: 77, B: 153},
	Player:     RGB{R: 0, G: 255, B: 255},
	Agent:      RGB{R: 255, G: 51, B: 51},
	Win:        RGB{R: 0, G: 255, B: 0},
	Lose:       RGB{R: 255, G: 0, B: 0},
	Text:       RGB{R: 255, G: 255, B: 255},
}
