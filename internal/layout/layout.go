// Package layout splits terminal rectangles into bands and columns.
//
// Constraints:
//   - Length(n): exactly n cells
//   - Percentage(p): p percent of the area (0-100)
//   - Min(n): at least n cells, takes whatever is left over
//
// Regions always tile the input area exactly. Surplus goes to Min regions
// (or the last region when there are none); a shortfall is taken from Min
// regions first, then from the end.
package layout

// Rect is an area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Inner shrinks the rect by margin on every side, never below zero size.
func (r Rect) Inner(margin int) Rect {
	w := max(r.Width-2*margin, 0)
	h := max(r.Height-2*margin, 0)
	return Rect{X: r.X + margin, Y: r.Y + margin, Width: w, Height: h}
}

// Direction is the axis along which Split divides.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

// Constraint sizes one region.
type Constraint interface {
	size(total int) int
}

type Length int

func (l Length) size(int) int { return max(int(l), 0) }

type Percentage int

func (p Percentage) size(total int) int {
	return total * min(max(int(p), 0), 100) / 100
}

type Min int

func (m Min) size(int) int { return max(int(m), 0) }

// Split divides area along dir into one region per constraint.
func Split(area Rect, dir Direction, cs ...Constraint) []Rect {
	if len(cs) == 0 {
		return nil
	}
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}
	total = max(total, 0)

	sizes := make([]int, len(cs))
	used := 0
	var mins []int
	for i, c := range cs {
		sizes[i] = c.size(total)
		used += sizes[i]
		if _, ok := c.(Min); ok {
			mins = append(mins, i)
		}
	}

	switch diff := total - used; {
	case diff > 0:
		grow(sizes, mins, diff)
	case diff < 0:
		shrink(sizes, mins, -diff)
	}

	out := make([]Rect, len(cs))
	off := 0
	for i, n := range sizes {
		if dir == Horizontal {
			out[i] = Rect{X: area.X + off, Y: area.Y, Width: n, Height: area.Height}
		} else {
			out[i] = Rect{X: area.X, Y: area.Y + off, Width: area.Width, Height: n}
		}
		off += n
	}
	return out
}

// grow hands surplus to the Min regions, evenly, remainder to the last.
func grow(sizes, mins []int, surplus int) {
	if len(mins) == 0 {
		sizes[len(sizes)-1] += surplus
		return
	}
	each := surplus / len(mins)
	for _, i := range mins {
		sizes[i] += each
	}
	sizes[mins[len(mins)-1]] += surplus - each*len(mins)
}

// shrink removes overflow from Min regions first, then from the end.
func shrink(sizes, mins []int, over int) {
	for _, i := range mins {
		if over == 0 {
			return
		}
		take := min(sizes[i], over)
		sizes[i] -= take
		over -= take
	}
	for i := len(sizes) - 1; i >= 0 && over > 0; i-- {
		take := min(sizes[i], over)
		sizes[i] -= take
		over -= take
	}
}
