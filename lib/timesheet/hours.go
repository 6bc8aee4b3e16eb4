package timesheethandler

import (
	"strconv"
	"strings"
)

// CalcTotalHours считает отработанные часы по формуле исходного портала:
// max(0, конец - начало - перерыв) в часах.
// Смена через полночь не поддерживается и дает 0.
func CalcTotalHours(startTime, endTime string, breakMinutes int) float64 {
	startMinutes := clockToMinutes(startTime)
	endMinutes := clockToMinutes(endTime)
	totalMinutes := endMinutes - startMinutes - breakMinutes
	if totalMinutes < 0 {
		return 0
	}
	return float64(totalMinutes) / 60
}

func clockToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
