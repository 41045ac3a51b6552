package median

import (
	"strconv"
)

// A running median over bucket indices: either a single bucket (Lo ==
// Hi) or the average of two buckets.
type Median struct {
	Lo int
	Hi int
}

func (m Median) IsWhole() bool {
	return m.Lo == m.Hi
}

func (m Median) Float() float64 {
	return float64(m.Lo+m.Hi) / 2
}

// String prints a whole median as an integer and an average with one
// decimal place (e.g., "3", "1.5", "3.0").
func (m Median) String() string {
	if m.IsWhole() {
		return strconv.Itoa(m.Lo)
	}
	return strconv.FormatFloat(m.Float(), 'f', 1, 64)
}
