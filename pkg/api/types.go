package api

import (
	"time"

	"github.com/mfreeman451/streamdash/pkg/models"
)

// SystemStatus summarizes the cluster for the status bar.
type SystemStatus struct {
	TotalNodes           int       `json:"total_nodes"`
	HealthyNodes         int       `json:"healthy_nodes"`
	WarningNodes         int       `json:"warning_nodes"`
	CriticalNodes        int       `json:"critical_nodes"`
	Topics               int       `json:"topics"`
	UnacknowledgedAlerts int       `json:"unacknowledged_alerts"`
	RealTimeEnabled      bool      `json:"real_time_enabled"`
	LastUpdate           time.Time `json:"last_update"`
}

// WSMessage is the frame pushed to websocket clients. Type is a store change
// name, or "snapshot" for the first frame.
type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const snapshotMessage = "snapshot"

type timeRangeRequest struct {
	TimeRange models.TimeRange `json:"time_range"`
}

type themeRequest struct {
	Theme models.Theme `json:"theme"`
}
