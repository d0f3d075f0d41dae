package utils

import (
	"strconv"
)

// StringToUint converts a route parameter to a uint, returns 0 if invalid.
func StringToUint(s string) uint {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0
	}
	return uint(i)
}
