package standings

import "fmt"

// Percent is a ratio in [0, 1] displayed as a percentage.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p)*100)
}
