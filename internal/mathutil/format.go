package mathutil

import (
	"strconv"
	"strings"
)

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatVec(vals ...float32) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(v))
	}
	return sb.String()
}

// formatRows renders a row-major size×size matrix: values separated by a
// space, every row terminated by a newline.
func formatRows(data []float32, size int) string {
	var sb strings.Builder
	for r := 0; r < size; r++ {
		sb.WriteString(formatVec(data[r*size : r*size+size]...))
		sb.WriteByte('\n')
	}
	return sb.String()
}
