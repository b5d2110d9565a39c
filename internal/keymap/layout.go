package keymap

import (
	"kbtrackpad/internal/display"
	"kbtrackpad/internal/keys"
)

const (
	// GridCols is the number of columns the geometry is divided into.
	GridCols = 15
	// GridRows is the number of rows the geometry is divided into.
	GridRows = 6
)

// Row is one physical keyboard row, left to right.
type Row []keys.KeyCode

// gridRows are the rows laid out on the uniform grid, top to bottom.
var gridRows = []Row{
	{
		keys.KeyGrave,
		keys.Key1, keys.Key2, keys.Key3, keys.Key4, keys.Key5,
		keys.Key6, keys.Key7, keys.Key8, keys.Key9, keys.Key0,
		keys.KeyMinus, keys.KeyEqual,
		keys.KeyDelete,
	},
	{
		keys.KeyTab,
		keys.KeyQ, keys.KeyW, keys.KeyE, keys.KeyR, keys.KeyT,
		keys.KeyY, keys.KeyU, keys.KeyI, keys.KeyO, keys.KeyP,
		keys.KeyLeftBracket, keys.KeyRightBracket,
		keys.KeyBackslash,
	},
	{
		keys.KeyCapsLock,
		keys.KeyA, keys.KeyS, keys.KeyD, keys.KeyF, keys.KeyG,
		keys.KeyH, keys.KeyJ, keys.KeyK, keys.KeyL,
		keys.KeySemicolon, keys.KeyQuote,
		keys.KeyReturn,
	},
	{
		keys.KeyShift,
		keys.KeyZ, keys.KeyX, keys.KeyC, keys.KeyV, keys.KeyB,
		keys.KeyN, keys.KeyM,
		keys.KeyComma, keys.KeyPeriod, keys.KeySlash,
		keys.KeyRightShift,
	},
	{
		keys.KeyOption,
		keys.KeyCommand,
		keys.KeySpace,
		keys.KeyRightCommand,
		keys.KeyRightOption,
	},
}

// arrowRow is placed as a diamond near the bottom-right corner instead of
// on the grid. Order: left, right, down, up.
var arrowRow = Row{keys.KeyLeftArrow, keys.KeyRightArrow, keys.KeyDownArrow, keys.KeyUpArrow}

// Layout returns a copy of the fixed layout: the five grid rows followed by
// the arrow cluster.
func Layout() []Row {
	rows := make([]Row, 0, len(gridRows)+1)
	for _, r := range gridRows {
		rows = append(rows, append(Row(nil), r...))
	}
	return append(rows, append(Row(nil), arrowRow...))
}

// buildTable computes a fresh position table for geometry.
func buildTable(geometry display.Rect) map[keys.KeyCode]display.Point {
	table := make(map[keys.KeyCode]display.Point, 64)

	cellWidth := geometry.Width / GridCols
	cellHeight := geometry.Height / GridRows

	for r, row := range gridRows {
		y := geometry.MinY() + (float64(r)+0.5)*cellHeight
		// Every row spans the full width, so short rows get wider spacing.
		stretch := float64(GridCols) / float64(len(row))
		for i, code := range row {
			x := geometry.MinX() + (float64(i)+0.5)*cellWidth*stretch
			table[code] = display.Point{X: x, Y: y}
		}
	}

	left := display.Point{
		X: geometry.MaxX() - 3*cellWidth,
		Y: geometry.MaxY() - 1.5*cellHeight,
	}
	midX := left.X + cellWidth
	table[arrowRow[0]] = left
	table[arrowRow[1]] = display.Point{X: left.X + 2*cellWidth, Y: left.Y}
	table[arrowRow[2]] = display.Point{X: midX, Y: left.Y + 0.5*cellHeight}
	table[arrowRow[3]] = display.Point{X: midX, Y: left.Y - 0.5*cellHeight}

	return table
}
