package models

// Theme is the dashboard color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// TimeRange is the window selected for trend charts.
type TimeRange string

const (
	Range1h  TimeRange = "1h"
	Range6h  TimeRange = "6h"
	Range24h TimeRange = "24h"
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
)

// Valid reports whether r is a selectable range.
func (r TimeRange) Valid() bool {
	switch r {
	case Range1h, Range6h, Range24h, Range7d, Range30d:
		return true
	default:
		return false
	}
}

// UIState holds the dashboard's view toggles.
type UIState struct {
	TimeRange       TimeRange `json:"selected_time_range"`
	RealTimeEnabled bool      `json:"real_time_enabled"`
	SidebarOpen     bool      `json:"sidebar_open"`
	Theme           Theme     `json:"theme"`
}

// DefaultUIState is the state a fresh dashboard starts with.
func DefaultUIState() UIState {
	return UIState{
		TimeRange:       Range24h,
		RealTimeEnabled: true,
		SidebarOpen:     true,
		Theme:           ThemeDark,
	}
}
