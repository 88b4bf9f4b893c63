package kernel

// The calendar renders a fixed visible window of hours; everything the engine
// projects onto the calendar is clamped into it.
const (
	// VisibleStartHour is the first hour-of-day shown on the provider calendar.
	VisibleStartHour = 7
	// VisibleEndHour is the last hour-of-day shown on the provider calendar.
	VisibleEndHour = 20
	// EndOfDayHour stands in for a "00:00" end time, which means the block
	// runs past midnight and is clamped to the visible window.
	EndOfDayHour = 24
)

// ClampHour bounds an hour-of-day value to [minHour, maxHour].
func ClampHour(hour, minHour, maxHour int) int {
	if hour < minHour {
		return minHour
	}
	if hour > maxHour {
		return maxHour
	}
	return hour
}

// ClampToVisibleWindow bounds an hour-of-day value to the visible calendar
// window.
func ClampToVisibleWindow(hour int) int {
	return ClampHour(hour, VisibleStartHour, VisibleEndHour)
}

// InVisibleWindow reports whether an hour-of-day lies inside the visible
// calendar window.
func InVisibleWindow(hour int) bool {
	return hour >= VisibleStartHour && hour <= VisibleEndHour
}
