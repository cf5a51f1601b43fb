package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	timestampLayout = "2006-01-02 15:04"
	sizeUnitStep    = 1024
)

var sizeUnits = []string{"b", "kb", "mb", "gb", "tb"}

// FormatFileSize converts a byte length into a short lower-case unit string such as "1.5kb".
func FormatFileSize(byteCount int64) string {
	if byteCount < sizeUnitStep {
		if byteCount < 0 {
			byteCount = 0
		}
		return fmt.Sprintf("%d%s", byteCount, sizeUnits[0])
	}
	scaledValue := float64(byteCount)
	unitIndex := 0
	for scaledValue >= sizeUnitStep && unitIndex < len(sizeUnits)-1 {
		scaledValue /= sizeUnitStep
		unitIndex++
	}
	if scaledValue < 10 {
		return strings.TrimSuffix(fmt.Sprintf("%.1f", scaledValue), ".0") + sizeUnits[unitIndex]
	}
	return fmt.Sprintf("%.0f%s", scaledValue, sizeUnits[unitIndex])
}

// FormatTimestamp renders a modification time in the local time zone with minute precision.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(timestampLayout)
}
