package layout

// Split partitions area among children along style.Direction.
// area is the parent's inner rectangle (after its own margin, offset, and
// any decoration its Draw removed). Each entry of children is the child's own
// Style; only its Width and Height constraints are read.
//
// The result has one Rect per child, in child order, each contained in area.
// Split never fails: when space runs out, later children get zero-size rects.
func Split(area Rect, style Style, children []Style) []Rect {
	n := len(children)
	if n == 0 {
		return nil
	}

	horizontal := style.Direction == Horizontal
	mainSize, crossSize := area.Height, area.Width
	if horizontal {
		mainSize, crossSize = crossSize, mainSize
	}
	mainSize = max(mainSize, 0)
	crossSize = max(crossSize, 0)

	gap := max(style.Gap, 0)
	available := max(0, mainSize-gap*(n-1))

	// Phase 1: sized constraints are honoured first, in child order
	sizes := make([]int, n)
	remaining := available
	var fills, mins []int
	for i, child := range children {
		c := child.main(style.Direction)
		if c.Unit == UnitFill {
			fills = append(fills, i)
			continue
		}
		if c.Unit == UnitMin {
			mins = append(mins, i)
		}
		sizes[i] = min(max(c.request(available), 0), remaining)
		remaining -= sizes[i]
	}

	// Phase 2: leftover goes to Fill by weight, or to Min when nothing fills
	switch {
	case len(fills) > 0 && remaining > 0:
		weights := make([]float64, len(fills))
		for j, i := range fills {
			// the zero Constraint is Fill(0), which must not starve a child
			weights[j] = max(children[i].main(style.Direction).Amount, 1)
		}
		for j, extra := range distribute(remaining, weights) {
			sizes[fills[j]] += extra
		}
		remaining = 0
	case len(fills) == 0 && len(mins) > 0 && remaining > 0:
		weights := make([]float64, len(mins))
		for j := range weights {
			weights[j] = 1
		}
		for j, extra := range distribute(remaining, weights) {
			sizes[mins[j]] += extra
		}
		remaining = 0
	}

	// Phase 3: position along the main axis (justify)
	offset := calculateJustifyOffset(style.Justify, remaining, n)
	spacing := calculateJustifySpacing(style.Justify, remaining, n)

	rects := make([]Rect, n)
	pos := offset
	for i, child := range children {
		start := min(pos, mainSize)
		size := min(sizes[i], mainSize-start)
		cross := child.cross(style.Direction).Cross(crossSize)

		if horizontal {
			rects[i] = Rect{X: area.X + start, Y: area.Y, Width: size, Height: cross}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + start, Width: cross, Height: size}
		}
		pos += sizes[i] + gap + spacing
	}
	return rects
}

// distribute splits total across weights using cumulative rounding, so the
// parts always sum to exactly total.
func distribute(total int, weights []float64) []int {
	parts := make([]int, len(weights))
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 || total <= 0 {
		return parts
	}
	acc := 0.0
	given := 0
	for i, w := range weights {
		acc += w
		upto := int(float64(total) * acc / sum)
		if i == len(weights)-1 {
			upto = total
		}
		parts[i] = upto - given
		given = upto
	}
	return parts
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / (itemCount * 2)
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace, itemCount int) int {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / (itemCount - 1)
	case JustifySpaceAround:
		return freeSpace / itemCount
	case JustifySpaceEvenly:
		return freeSpace / (itemCount + 1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}
