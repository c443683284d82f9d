package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func formatDistance(km float64) string {
	return strings.Replace(strconv.FormatFloat(km, 'f', 1, 64), ".", ",", 1) + " km"
}

func formatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	return fmt.Sprintf("%d h %02d min", total/60, total%60)
}
