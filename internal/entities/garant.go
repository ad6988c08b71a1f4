package entities

import "time"

// GarantPolicy гарантированный минимум выплат за смену.
type GarantPolicy struct {
	ID     int64
	Name   string
	Amount int64

	// LateMinutePenalty размер штрафной единицы за минуту опоздания.
	LateMinutePenalty int64
}

type ScheduleStatus string

const (
	ScheduleOpen   ScheduleStatus = "open"
	ScheduleClosed ScheduleStatus = "closed"
)

type WorkScheduleEntry struct {
	ID          int64
	CourierID   int64
	Status      ScheduleStatus
	OpenedAt    time.Time
	ClosedAt    *time.Time
	LateMinutes int64
}
