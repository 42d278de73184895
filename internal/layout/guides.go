package layout

import (
	"math"
	"sort"
)

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Guide is an alignment line at Position on the x axis (vertical) or y axis (horizontal).
type Guide struct {
	Orientation Orientation `json:"orientation"`
	Position    float64     `json:"position"`
}

func verticalLines(r Rect) [3]float64 {
	return [3]float64{r.X, r.X + r.Width/2, r.X + r.Width}
}

func horizontalLines(r Rect) [3]float64 {
	return [3]float64{r.Y, r.Y + r.Height/2, r.Y + r.Height}
}

// Guides compares the candidate rectangle of the dragged zone with every other zone and
// returns the lines of those zones that lie within threshold of one of the candidate's
// edges or centers. The result is sorted and free of duplicates. Guides never move the
// candidate.
func Guides(zones []Zone, draggedID string, candidate Rect, threshold float64) []Guide {
	seen := make(map[Guide]bool)
	var out []Guide
	add := func(g Guide) {
		if !seen[g] {
			seen[g] = true
			out = append(out, g)
		}
	}

	cv, ch := verticalLines(candidate), horizontalLines(candidate)
	for _, z := range zones {
		if z.ID == draggedID {
			continue
		}
		zv, zh := verticalLines(z.Layout), horizontalLines(z.Layout)
		for _, a := range cv {
			for _, b := range zv {
				if math.Abs(a-b) <= threshold {
					add(Guide{Orientation: Vertical, Position: b})
				}
			}
		}
		for _, a := range ch {
			for _, b := range zh {
				if math.Abs(a-b) <= threshold {
					add(Guide{Orientation: Horizontal, Position: b})
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Orientation != out[j].Orientation {
			return out[i].Orientation == Vertical
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// Guides runs Guides over the store's zones with the configured threshold.
func (s *Store) Guides(draggedID string, candidate Rect) []Guide {
	return Guides(s.zones, draggedID, candidate, s.opts.GuideThreshold)
}
