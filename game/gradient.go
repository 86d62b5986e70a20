package game

// RenderGradient fills a 4-byte-per-pixel buffer with a blue/green
// gradient. Each pixel is laid out blue, green, red, alpha in memory,
// which is ARGB8888 on little-endian hosts. Blue follows the column and
// green the row, both shifted by the offsets and wrapped to a byte.
//
// pixels must hold at least height rows of pitch bytes. Padding at the
// end of a row is left alone.
func RenderGradient(pixels []byte, width, height, pitch, xOffset, yOffset int) {
	for y := 0; y < height; y++ {
		row := pixels[y*pitch : y*pitch+width*4]
		green := byte(y + yOffset)
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			p[0] = byte(x + xOffset)
			p[1] = green
			p[2] = 0
			p[3] = 0
		}
	}
}
