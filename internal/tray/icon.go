package tray

import "encoding/binary"

const (
	iconSize     = 16
	iconDirSize  = 6 + 16
	dibSize      = 40
	pixelBytes   = iconSize * iconSize * 4
	maskRowBytes = 4 // 16 bits padded to a 32-bit boundary
	maskBytes    = iconSize * maskRowBytes
)

// keyboardGlyph is drawn top row first; '#' is opaque, '.' transparent.
var keyboardGlyph = [iconSize]string{
	"................",
	"................",
	"................",
	"################",
	"#..............#",
	"#.#.#.#.#.#.#..#",
	"#..............#",
	"#..#.#.#.#.#.#.#",
	"#..............#",
	"#.#.#.#.#.#.#..#",
	"#..............#",
	"#...########...#",
	"#..............#",
	"################",
	"................",
	"................",
}

// Icon returns a 16x16 32-bit ICO of a keyboard outline.
func Icon() []byte {
	icon := make([]byte, iconDirSize+dibSize+pixelBytes+maskBytes)

	// ICONDIR
	binary.LittleEndian.PutUint16(icon[2:], 1) // type: icon
	binary.LittleEndian.PutUint16(icon[4:], 1) // count

	// ICONDIRENTRY
	icon[6] = iconSize
	icon[7] = iconSize
	binary.LittleEndian.PutUint16(icon[10:], 1)  // planes
	binary.LittleEndian.PutUint16(icon[12:], 32) // bpp
	binary.LittleEndian.PutUint32(icon[14:], dibSize+pixelBytes+maskBytes)
	binary.LittleEndian.PutUint32(icon[18:], iconDirSize)

	// BITMAPINFOHEADER; height counts the XOR and AND bitmaps.
	dib := icon[iconDirSize:]
	binary.LittleEndian.PutUint32(dib[0:], dibSize)
	binary.LittleEndian.PutUint32(dib[4:], iconSize)
	binary.LittleEndian.PutUint32(dib[8:], iconSize*2)
	binary.LittleEndian.PutUint16(dib[12:], 1)
	binary.LittleEndian.PutUint16(dib[14:], 32)
	binary.LittleEndian.PutUint32(dib[20:], pixelBytes+maskBytes)

	// BGRA pixels, bottom row first. The AND mask stays zero since alpha
	// carries transparency.
	pixels := icon[iconDirSize+dibSize:]
	for row := 0; row < iconSize; row++ {
		line := keyboardGlyph[iconSize-1-row]
		for col := 0; col < iconSize; col++ {
			if line[col] != '#' {
				continue
			}
			off := (row*iconSize + col) * 4
			pixels[off+0] = 0x20
			pixels[off+1] = 0x20
			pixels[off+2] = 0x20
			pixels[off+3] = 0xFF
		}
	}
	return icon
}
