package model

// InstallStatus represents the status of a dependency install task
type InstallStatus string

const (
	// InstallStatusPending means the task is queued but not started
	InstallStatusPending InstallStatus = "Pending"

	// InstallStatusStarting means the task is in the process of starting
	InstallStatusStarting InstallStatus = "Starting"

	// InstallStatusDownloading means the binary download is in progress
	InstallStatusDownloading InstallStatus = "Downloading"

	// InstallStatusStopping means the task is in the process of stopping
	InstallStatusStopping InstallStatus = "Stopping"

	// InstallStatusStopped means the task was stopped by user
	InstallStatusStopped InstallStatus = "Stopped"

	// InstallStatusCompleted means the task finished successfully
	InstallStatusCompleted InstallStatus = "Completed"

	// InstallStatusError means the task failed with an error
	InstallStatusError InstallStatus = "Error"
)

// String returns the string representation of InstallStatus
func (is InstallStatus) String() string {
	return string(is)
}

// IsActive returns true if the task is in an active state
func (is InstallStatus) IsActive() bool {
	return is == InstallStatusStarting || is == InstallStatusDownloading || is == InstallStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (is InstallStatus) IsFinished() bool {
	return is == InstallStatusCompleted || is == InstallStatusStopped || is == InstallStatusError
}
