package grid

// CompactLine slides a line toward index 0 and merges equal neighbours.
// A tile merges at most once per call: a freshly doubled value never merges
// again with the tile that follows it.
//
// Returns the new line, whether it differs from the input, the score gained
// (sum of merged tile values) and the output indices of merged tiles.
func CompactLine(line Line) (out Line, changed bool, score int, merged []int) {
	dense := make([]int, 0, Size)
	for _, v := range line {
		if v != 0 {
			dense = append(dense, v)
		}
	}

	writePos := 0
	for i := 0; i < len(dense); i++ {
		if i+1 < len(dense) && dense[i] == dense[i+1] {
			v := dense[i] * 2
			out[writePos] = v
			score += v
			merged = append(merged, writePos)
			i++ // consumed neighbour
		} else {
			out[writePos] = dense[i]
		}
		writePos++
	}

	return out, out != line, score, merged
}

// reverse returns the line in reverse order.
func (l Line) reverse() Line {
	var result Line
	for i := range Size {
		result[i] = l[Size-1-i]
	}
	return result
}
