// Package layout implements the greedy flow layout used to place action
// chips: items flow left to right in input order and wrap at the container
// edge, like words in a paragraph.
package layout

// Size is a width/height pair in points.
type Size struct {
	Width  float64
	Height float64
}

// Placement is one laid-out item. Index is the item's position in the
// input slice; placements are returned in input order.
type Placement struct {
	Index int
	Row   int
	X     float64
	Y     float64
	Size  Size
}

// Result is a completed flow. Size.Width is the widest row's content
// width; Size.Height is the sum of row heights plus spacing between rows.
type Result struct {
	Placements []Placement
	Rows       int
	Size       Size
}

// Flow places items in input order, wrapping whenever the next item would
// cross containerWidth. A row is as tall as its tallest item. An item wider
// than the container gets a row to itself and overflows it; nothing is
// clipped or reordered.
func Flow(containerWidth, hSpacing, vSpacing float64, items []Size) Result {
	result := Result{Placements: make([]Placement, 0, len(items))}
	if len(items) == 0 {
		return result
	}

	var x, y, rowHeight, maxLineWidth float64
	row := 0
	for i, item := range items {
		if x > 0 && x+item.Width > containerWidth {
			y += rowHeight + vSpacing
			x = 0
			rowHeight = 0
			row++
		}
		result.Placements = append(result.Placements, Placement{
			Index: i,
			Row:   row,
			X:     x,
			Y:     y,
			Size:  item,
		})
		if x+item.Width > maxLineWidth {
			maxLineWidth = x + item.Width
		}
		if item.Height > rowHeight {
			rowHeight = item.Height
		}
		x += item.Width + hSpacing
	}

	result.Rows = row + 1
	result.Size = Size{Width: maxLineWidth, Height: y + rowHeight}
	return result
}
