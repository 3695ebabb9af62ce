package form

import "strings"

// SplitAmenities turns the comma separated input into a list, trimming each
// entry and dropping empty ones.
func SplitAmenities(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func JoinAmenities(list []string) string {
	return strings.Join(list, ", ")
}
