package filter

// Test helper functions shared across filter tests.

// filledBuffer returns a w x h RGB buffer with every pixel set to rgb.
func filledBuffer(w, h int, rgb [3]float32) []float32 {
	buf := make([]float32, w*h*3)
	for i := 0; i < len(buf); i += 3 {
		buf[i+0] = rgb[0]
		buf[i+1] = rgb[1]
		buf[i+2] = rgb[2]
	}
	return buf
}

// pixel returns the RGB samples at (x, y).
func pixel(buf []float32, w, x, y int) [3]float32 {
	i := (y*w + x) * 3
	return [3]float32{buf[i], buf[i+1], buf[i+2]}
}

// setPixel overwrites the RGB samples at (x, y).
func setPixel(buf []float32, w, x, y int, rgb [3]float32) {
	i := (y*w + x) * 3
	buf[i+0] = rgb[0]
	buf[i+1] = rgb[1]
	buf[i+2] = rgb[2]
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
