package mealplan

// PositionToMealType maps a slot index to its label. Indices past the end
// reuse the last label; an empty label list yields "".
func PositionToMealType(index int, labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	if index < 0 {
		index = 0
	}
	if index >= len(labels) {
		index = len(labels) - 1
	}
	return labels[index]
}
