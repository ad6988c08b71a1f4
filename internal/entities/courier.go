package entities

import (
	"time"
)

type Courier struct {
	ID             int64
	Name           string
	Phone          string
	Status         CourierStatusType
	Vehicle        VehicleType
	GarantPolicyID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VehicleType string

const (
	OnFoot  VehicleType = "on_foot"
	Bike    VehicleType = "bike"
	Car     VehicleType = "car"
)

const DefaultVehicleType = OnFoot

func (t VehicleType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierOnline  CourierStatusType = "online"
	CourierOffline CourierStatusType = "offline"
	CourierPaused  CourierStatusType = "paused"
)

func (t CourierStatusType) String() string {
	return string(t)
}

// Location точка в WGS84.
type Location struct {
	Lat float64
	Lon float64
}
