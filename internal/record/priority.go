// ABOUTME: Impact x urgency priority matrix and display labels for choice fields.
// ABOUTME: Labels follow the "N - Label" form the platform import expects.

package record

import "strconv"

// Priority collapses impact and urgency (1 = high .. 3 = low) into the five
// priority levels. Pairs outside the 3x3 matrix fall back to 3 (moderate).
func Priority(impact, urgency int) int {
	switch {
	case impact == 1 && urgency == 1:
		return 1
	case impact == 1 && urgency == 2, impact == 2 && urgency == 1:
		return 2
	case impact == 1 && urgency == 3, impact == 2 && urgency == 2, impact == 3 && urgency == 1:
		return 3
	case impact == 2 && urgency == 3, impact == 3 && urgency == 2:
		return 4
	case impact == 3 && urgency == 3:
		return 5
	}
	return 3
}

var (
	levelLabels    = map[int]string{1: "High", 2: "Medium", 3: "Low"}
	priorityLabels = map[int]string{1: "Critical", 2: "High", 3: "Moderate", 4: "Low", 5: "Planning"}
)

// LevelLabel renders an impact or urgency value, e.g. "2 - Medium".
func LevelLabel(v int) string {
	return label(levelLabels, v)
}

// PriorityLabel renders a priority value, e.g. "1 - Critical".
func PriorityLabel(v int) string {
	return label(priorityLabels, v)
}

func label(labels map[int]string, v int) string {
	if l, ok := labels[v]; ok {
		return strconv.Itoa(v) + " - " + l
	}
	return strconv.Itoa(v)
}
