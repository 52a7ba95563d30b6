package inventory

import "fmt"

// Cost returns the summed credit cost of the equipped items and weapons.
// Negative costs are treated as zero.
//
// Postcondition: Returns >= 0.
func Cost(items []EquippedItem, weapons []WeaponProfile) int {
	total := 0
	for _, it := range items {
		total += max(it.Cost, 0)
	}
	for _, w := range weapons {
		total += max(w.Cost, 0)
	}
	return total
}

// FormatCredits renders a credit total, e.g. "1 credit" or "125 credits".
//
// Precondition: total >= 0.
func FormatCredits(total int) string {
	return fmt.Sprintf("%d %s", total, plural(total, "credit"))
}

// plural returns the singular form if n == 1, otherwise appends "s".
func plural(n int, singular string) string {
	if n == 1 {
		return singular
	}
	return singular + "s"
}
