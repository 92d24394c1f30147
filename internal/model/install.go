package model

import "time"

// InstallTask represents a dependency install operation
type InstallTask struct {
	ID         string
	Tool       string
	URL        string
	DestPath   string
	Status     InstallStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}
