package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RolePatient     = 0
	RoleAdmin       = 1
	RoleNurse       = 2
	RoleCaseManager = 3
)

// Bed status
const (
	BedStatusAvailable   = 1
	BedStatusBusy        = 2
	BedStatusMaintenance = 3
)

// Schedule status
const (
	ScheduleStatusScheduled  = 0
	ScheduleStatusInProgress = 1
	ScheduleStatusCompleted  = 2
	ScheduleStatusCancelled  = 3
)

// Schedule lifecycle state
const (
	StateScheduled  = 0
	StateCheckedIn  = 1
	StateInProgress = 2
	StateCompleted  = 3
	StateNoShow     = 4
)

// Settings mặc định
const (
	DefaultMaintenanceMinutes = 30
	DefaultDurationHours      = 4
)
