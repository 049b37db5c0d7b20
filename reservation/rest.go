package reservation

import (
	"strconv"
	"time"
)

// RestReservation represents the REST API model for reservation responses
type RestReservation struct {
	ID            uint32           `json:"id"`
	ClientId      uint32           `json:"clientId"`
	ClientName    string           `json:"clientName"`
	VesselName    string           `json:"vesselName"`
	Date          string           `json:"date"`
	TimeOfDay     string           `json:"timeOfDay,omitempty"`
	Route         string           `json:"route,omitempty"`
	Status        string           `json:"status"`
	CheckInPhotos []string         `json:"checkInPhotos"`
	TripPhotos    []string         `json:"tripPhotos"`
	FuelReceipt   *RestFuelReceipt `json:"fuelReceipt,omitempty"`
	InWaterAt     *time.Time       `json:"inWaterAt,omitempty"`
	NavigatingAt  *time.Time       `json:"navigatingAt,omitempty"`
	ReturnedAt    *time.Time       `json:"returnedAt,omitempty"`
	CheckedInAt   *time.Time       `json:"checkedInAt,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// RestFuelReceipt represents fuel receipt information in reservation responses
type RestFuelReceipt struct {
	Image      string    `json:"image"`
	PayeeName  string    `json:"payeeName"`
	PayeeKey   string    `json:"payeeKey,omitempty"`
	AttachedAt time.Time `json:"attachedAt"`
}

// RestMaintenanceBlock represents a maintenance block in REST API responses
type RestMaintenanceBlock struct {
	ID         uint32    `json:"id"`
	VesselName string    `json:"vesselName"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RestBlockedDates represents the advisory blocked-date set for a client
type RestBlockedDates struct {
	ClientId uint32   `json:"clientId"`
	Dates    []string `json:"dates"`
}

// GetType returns the JSON:API resource type for reservation
func (rr RestReservation) GetType() string {
	return "reservation"
}

// GetID returns the JSON:API resource ID for reservation
func (rr RestReservation) GetID() string {
	return strconv.Itoa(int(rr.ID))
}

// GetType returns the JSON:API resource type for maintenance block
func (rm RestMaintenanceBlock) GetType() string {
	return "maintenance-block"
}

// GetID returns the JSON:API resource ID for maintenance block
func (rm RestMaintenanceBlock) GetID() string {
	return strconv.Itoa(int(rm.ID))
}

// GetType returns the JSON:API resource type for blocked dates
func (rb RestBlockedDates) GetType() string {
	return "blocked-dates"
}

// GetID returns the JSON:API resource ID for blocked dates
func (rb RestBlockedDates) GetID() string {
	return strconv.Itoa(int(rb.ClientId))
}

// Transform converts a domain Reservation model to REST representation
func Transform(r Reservation) (RestReservation, error) {
	rest := RestReservation{
		ID:            r.Id(),
		ClientId:      r.ClientId(),
		ClientName:    r.ClientName(),
		VesselName:    r.VesselName(),
		Date:          string(r.Date()),
		TimeOfDay:     r.TimeOfDay(),
		Route:         r.Route(),
		Status:        r.Status().String(),
		CheckInPhotos: r.CheckInPhotos(),
		TripPhotos:    r.TripPhotos(),
		InWaterAt:     r.InWaterAt(),
		NavigatingAt:  r.NavigatingAt(),
		ReturnedAt:    r.ReturnedAt(),
		CheckedInAt:   r.CheckedInAt(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}

	if receipt := r.FuelReceipt(); receipt != nil {
		rest.FuelReceipt = &RestFuelReceipt{
			Image:      receipt.Image(),
			PayeeName:  receipt.PayeeName(),
			PayeeKey:   receipt.PayeeKey(),
			AttachedAt: receipt.AttachedAt(),
		}
	}

	return rest, nil
}

// TransformAll converts a slice of domain Reservation models to REST representation
func TransformAll(reservations []Reservation) ([]RestReservation, error) {
	restReservations := make([]RestReservation, 0, len(reservations))

	for _, reservation := range reservations {
		restReservation, err := Transform(reservation)
		if err != nil {
			return nil, err
		}
		restReservations = append(restReservations, restReservation)
	}

	return restReservations, nil
}

// TransformMaintenanceBlock converts a domain MaintenanceBlock model to REST representation
func TransformMaintenanceBlock(m MaintenanceBlock) (RestMaintenanceBlock, error) {
	return RestMaintenanceBlock{
		ID:         m.Id(),
		VesselName: m.VesselName(),
		Date:       string(m.Date()),
		CreatedAt:  m.CreatedAt(),
	}, nil
}

// TransformMaintenanceBlocks converts a slice of domain MaintenanceBlock models to REST representation
func TransformMaintenanceBlocks(blocks []MaintenanceBlock) ([]RestMaintenanceBlock, error) {
	restBlocks := make([]RestMaintenanceBlock, 0, len(blocks))

	for _, block := range blocks {
		restBlock, err := TransformMaintenanceBlock(block)
		if err != nil {
			return nil, err
		}
		restBlocks = append(restBlocks, restBlock)
	}

	return restBlocks, nil
}
