package cloud

import (
	"math"
	"math/rand"
)

// Placement is a word positioned on the canvas. X and Y are the centre of
// its bounding box.
type Placement struct {
	Word     string
	Count    int
	Size     float64
	X, Y     float64
	W, H     float64
	Vertical bool
}

func (p Placement) bounds() rect {
	return rect{p.X - p.W/2, p.Y - p.H/2, p.X + p.W/2, p.Y + p.H/2}
}

type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) overlaps(o rect) bool {
	return r.x0 < o.x1 && o.x0 < r.x1 && r.y0 < o.y1 && o.y0 < r.y1
}

func (r rect) inside(width, height float64) bool {
	return r.x0 >= 0 && r.y0 >= 0 && r.x1 <= width && r.y1 <= height
}

// measureFunc returns the width and height of word drawn at size
type measureFunc func(word string, size float64) (float64, float64)

const (
	minFontSize     = 10.0
	verticalShare   = 0.1
	shrinkFactor    = 0.8
	spiralStep      = 0.1
	spiralSpacing   = 2.0
	wordPadding     = 2.0
	maxFontFraction = 0.25
)

// layout places words along an Archimedean spiral starting at the canvas
// centre. Font sizes scale linearly with count relative to the top word.
// A word that does not fit is shrunk until minFontSize and then dropped.
func layout(words []WordCount, width, height int, measure measureFunc, rng *rand.Rand) []Placement {
	if len(words) == 0 {
		return nil
	}

	w, h := float64(width), float64(height)
	maxSize := h * maxFontFraction
	top := float64(words[0].Count)
	aspect := w / h
	// beyond this radius every spiral point lies outside the canvas
	maxRadius := math.Hypot(w/(2*aspect), h/2)

	var placed []Placement
	for _, wc := range words {
		size := minFontSize + (maxSize-minFontSize)*float64(wc.Count)/top
		vertical := rng.Float64() < verticalShare

		for size >= minFontSize {
			p, ok := place(wc, size, vertical, placed, w, h, aspect, maxRadius, measure)
			if ok {
				placed = append(placed, p)
				break
			}
			size *= shrinkFactor
		}
	}
	return placed
}

func place(wc WordCount, size float64, vertical bool, placed []Placement, w, h, aspect, maxRadius float64, measure measureFunc) (Placement, bool) {
	bw, bh := measure(wc.Word, size)
	bw += wordPadding
	bh += wordPadding
	if vertical {
		bw, bh = bh, bw
	}

	p := Placement{Word: wc.Word, Count: wc.Count, Size: size, W: bw, H: bh, Vertical: vertical}
	cx, cy := w/2, h/2

	for t := 0.0; ; t += spiralStep {
		r := spiralSpacing * t
		if r > maxRadius {
			return Placement{}, false
		}
		p.X = cx + r*math.Cos(t)*aspect
		p.Y = cy + r*math.Sin(t)

		b := p.bounds()
		if !b.inside(w, h) {
			continue
		}
		if !collides(b, placed) {
			return p, true
		}
	}
}

func collides(b rect, placed []Placement) bool {
	for _, q := range placed {
		if b.overlaps(q.bounds()) {
			return true
		}
	}
	return false
}
