package widgets

import "strings"

// Split shares its area between Parts, top to bottom or, when Across is set,
// left to right. Weights size the parts; a missing or non-positive weight
// counts as 1. Every part is padded to exactly its share.
type Split struct {
	Parts   []Widget
	Weights []int
	Across  bool
	Gap     int
}

func (s Split) Render(width, height int) string {
	if len(s.Parts) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	if s.Across {
		return s.renderAcross(width, height)
	}
	return s.renderDown(width, height)
}

func (s Split) renderDown(width, height int) string {
	sizes := s.shares(height)
	out := make([]string, 0, height)
	for i, part := range s.Parts {
		if i > 0 {
			out = append(out, make([]string, max(0, s.Gap))...)
		}
		if sizes[i] == 0 {
			continue
		}
		out = append(out, fitRows(splitRows(part.Render(width, sizes[i])), sizes[i])...)
	}
	return strings.Join(fitRows(out, height), "\n")
}

func (s Split) renderAcross(width, height int) string {
	sizes := s.shares(width)
	columns := make([][]string, len(s.Parts))
	for i, part := range s.Parts {
		if sizes[i] > 0 {
			columns[i] = fitRows(splitRows(part.Render(sizes[i], height)), height)
		}
	}
	gap := strings.Repeat(" ", max(0, s.Gap))
	out := make([]string, height)
	for row := range out {
		var b strings.Builder
		for i := range s.Parts {
			if i > 0 {
				b.WriteString(gap)
			}
			if sizes[i] > 0 {
				b.WriteString(padRight(columns[i][row], sizes[i]))
			}
		}
		out[row] = b.String()
	}
	return strings.Join(out, "\n")
}

// shares divides total, less the gaps, by weight. The rounding remainder goes
// to the last part.
func (s Split) shares(total int) []int {
	n := len(s.Parts)
	avail := max(0, total-max(0, s.Gap)*(n-1))
	weights := make([]int, n)
	sum := 0
	for i := range weights {
		weights[i] = 1
		if i < len(s.Weights) && s.Weights[i] > 0 {
			weights[i] = s.Weights[i]
		}
		sum += weights[i]
	}
	out := make([]int, n)
	used := 0
	for i, w := range weights {
		out[i] = avail * w / sum
		used += out[i]
	}
	out[n-1] += avail - used
	return out
}
