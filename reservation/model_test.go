package reservation

import (
	"testing"
	"time"

	"atlas-marina/calendar"
	"github.com/google/uuid"
)

func testReservation(t *testing.T, status Status) Reservation {
	t.Helper()

	now := time.Now()
	b := NewBuilder(100, "Sea Breeze", calendar.Date("2026-08-30"), uuid.New()).
		SetId(1).
		SetClientName("Jordan").
		SetStatus(status)

	if status.Position() >= StatusInWater.Position() {
		b = b.SetInWaterAt(&now)
	}
	if status.Position() >= StatusNavigating.Position() {
		b = b.SetNavigatingAt(&now)
	}
	if status.Position() >= StatusReturned.Position() {
		b = b.SetReturnedAt(&now)
	}
	if status == StatusCheckedIn {
		b = b.SetCheckedInAt(&now).SetCheckInPhotos([]string{"dock-1.jpg"})
	}

	r, err := b.Build()
	if err != nil {
		t.Fatalf("Failed to build test reservation: %v", err)
	}
	return r
}

func TestLaunch(t *testing.T) {
	r := testReservation(t, StatusAtDock)

	launched, err := r.Launch()
	if err != nil {
		t.Fatalf("Launch() returned error: %v", err)
	}

	if launched.Status() != StatusInWater {
		t.Errorf("Expected IN_WATER, got %s", launched.Status())
	}
	if launched.InWaterAt() == nil {
		t.Error("Expected launch timestamp to be stamped")
	}
	if r.Status() != StatusAtDock {
		t.Error("Expected original reservation to be unchanged")
	}
}

func TestLaunchRejectedWhenNotAtDock(t *testing.T) {
	r := testReservation(t, StatusInWater)
	if _, err := r.Launch(); err == nil {
		t.Error("Expected launch from IN_WATER to fail")
	}
}

func TestFullLifecycle(t *testing.T) {
	r := testReservation(t, StatusAtDock)

	launched, err := r.Launch()
	if err != nil {
		t.Fatalf("Launch() returned error: %v", err)
	}

	departed, err := launched.Depart()
	if err != nil {
		t.Fatalf("Depart() returned error: %v", err)
	}
	if departed.NavigatingAt() == nil {
		t.Error("Expected departure timestamp to be stamped")
	}

	returned, err := departed.Return()
	if err != nil {
		t.Fatalf("Return() returned error: %v", err)
	}
	if returned.ReturnedAt() == nil {
		t.Error("Expected return timestamp to be stamped")
	}

	withPhotos, err := returned.AttachCheckInPhotos([]string{"dock-1.jpg", "dock-2.jpg"})
	if err != nil {
		t.Fatalf("AttachCheckInPhotos() returned error: %v", err)
	}

	checkedIn, err := withPhotos.CheckIn()
	if err != nil {
		t.Fatalf("CheckIn() returned error: %v", err)
	}
	if checkedIn.Status() != StatusCheckedIn {
		t.Errorf("Expected CHECKED_IN, got %s", checkedIn.Status())
	}
	if checkedIn.CheckedInAt() == nil {
		t.Error("Expected check-in timestamp to be stamped")
	}
	if !checkedIn.IsTerminal() {
		t.Error("Expected checked-in reservation to be terminal")
	}
}

func TestCheckInRequiresPhoto(t *testing.T) {
	r := testReservation(t, StatusReturned)

	if _, err := r.CheckIn(); err == nil {
		t.Error("Expected check-in without photos to fail")
	}
}

func TestAdvanceTo(t *testing.T) {
	r := testReservation(t, StatusAtDock)

	advanced, err := r.AdvanceTo(StatusInWater)
	if err != nil {
		t.Fatalf("AdvanceTo() returned error: %v", err)
	}
	if advanced.Status() != StatusInWater {
		t.Errorf("Expected IN_WATER, got %s", advanced.Status())
	}

	if _, err := r.AdvanceTo(StatusReturned); err == nil {
		t.Error("Expected skipping transition to fail")
	}
}

func TestAttachTripPhotos(t *testing.T) {
	r := testReservation(t, StatusInWater)

	updated, err := r.AttachTripPhotos([]string{"trip-1.jpg", "trip-2.jpg"})
	if err != nil {
		t.Fatalf("AttachTripPhotos() returned error: %v", err)
	}
	if len(updated.TripPhotos()) != 2 {
		t.Errorf("Expected 2 trip photos, got %d", len(updated.TripPhotos()))
	}
}

func TestAttachTripPhotosOnlyInWater(t *testing.T) {
	for _, status := range []Status{StatusAtDock, StatusNavigating, StatusReturned, StatusCheckedIn} {
		r := testReservation(t, status)
		if _, err := r.AttachTripPhotos([]string{"trip-1.jpg"}); err == nil {
			t.Errorf("Expected trip photo attachment to fail in %s", status)
		}
	}
}

func TestAttachTripPhotosCapped(t *testing.T) {
	r := testReservation(t, StatusInWater)

	six := []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg"}
	updated, err := r.AttachTripPhotos(six)
	if err != nil {
		t.Fatalf("AttachTripPhotos() at the cap returned error: %v", err)
	}
	if len(updated.TripPhotos()) != MaxTripPhotos {
		t.Errorf("Expected %d trip photos, got %d", MaxTripPhotos, len(updated.TripPhotos()))
	}

	if _, err := updated.AttachTripPhotos([]string{"7.jpg"}); err == nil {
		t.Error("Expected attachment beyond the cap to fail")
	}
}

func TestAttachCheckInPhotosOnlyAfterReturn(t *testing.T) {
	for _, status := range []Status{StatusAtDock, StatusInWater, StatusNavigating, StatusCheckedIn} {
		r := testReservation(t, status)
		if _, err := r.AttachCheckInPhotos([]string{"dock-1.jpg"}); err == nil {
			t.Errorf("Expected check-in photo attachment to fail in %s", status)
		}
	}
}

func TestAttachCheckInPhotosCapped(t *testing.T) {
	r := testReservation(t, StatusReturned)

	ten := make([]string, MaxCheckInPhotos)
	for i := range ten {
		ten[i] = "dock.jpg"
	}

	updated, err := r.AttachCheckInPhotos(ten)
	if err != nil {
		t.Fatalf("AttachCheckInPhotos() at the cap returned error: %v", err)
	}

	if _, err := updated.AttachCheckInPhotos([]string{"extra.jpg"}); err == nil {
		t.Error("Expected attachment beyond the cap to fail")
	}
}

func TestAttachFuelReceiptOnlyNavigating(t *testing.T) {
	receipt := NewFuelReceipt("receipt.jpg", "Jordan", "jordan@pay", time.Now())

	r := testReservation(t, StatusNavigating)
	updated, err := r.AttachFuelReceipt(receipt)
	if err != nil {
		t.Fatalf("AttachFuelReceipt() returned error: %v", err)
	}
	if updated.FuelReceipt() == nil {
		t.Fatal("Expected fuel receipt to be attached")
	}
	if updated.FuelReceipt().PayeeName() != "Jordan" {
		t.Errorf("Expected payee Jordan, got %s", updated.FuelReceipt().PayeeName())
	}

	for _, status := range []Status{StatusAtDock, StatusInWater, StatusReturned, StatusCheckedIn} {
		r := testReservation(t, status)
		if _, err := r.AttachFuelReceipt(receipt); err == nil {
			t.Errorf("Expected fuel receipt attachment to fail in %s", status)
		}
	}
}

func TestWithFuelReceiptSkipsPrecondition(t *testing.T) {
	receipt := NewFuelReceipt("receipt.jpg", "Jordan", "jordan@pay", time.Now())

	r := testReservation(t, StatusCheckedIn)
	updated, err := r.WithFuelReceipt(receipt)
	if err != nil {
		t.Fatalf("WithFuelReceipt() returned error: %v", err)
	}
	if updated.FuelReceipt() == nil {
		t.Error("Expected fuel receipt to be carried onto a completed reservation")
	}
}

func TestReschedule(t *testing.T) {
	r := testReservation(t, StatusAtDock)

	updated, err := r.Reschedule(calendar.Date("2026-09-01"), "morning", "north cove")
	if err != nil {
		t.Fatalf("Reschedule() returned error: %v", err)
	}
	if updated.Date() != calendar.Date("2026-09-01") {
		t.Errorf("Expected date 2026-09-01, got %s", updated.Date())
	}
	if updated.TimeOfDay() != "morning" {
		t.Errorf("Expected time of day morning, got %s", updated.TimeOfDay())
	}
	if updated.Route() != "north cove" {
		t.Errorf("Expected route north cove, got %s", updated.Route())
	}
}

func TestRescheduleOnlyAtDock(t *testing.T) {
	for _, status := range []Status{StatusInWater, StatusNavigating, StatusReturned, StatusCheckedIn} {
		r := testReservation(t, status)
		if _, err := r.Reschedule(calendar.Date("2026-09-01"), "", ""); err == nil {
			t.Errorf("Expected reschedule to fail in %s", status)
		}
	}
}

func TestCanDelete(t *testing.T) {
	atDock := testReservation(t, StatusAtDock)

	if !atDock.CanDelete(100, false) {
		t.Error("Expected owner to delete an at-dock reservation")
	}
	if atDock.CanDelete(999, false) {
		t.Error("Expected non-owner not to delete")
	}
	if !atDock.CanDelete(0, true) {
		t.Error("Expected staff to delete an at-dock reservation")
	}

	inWater := testReservation(t, StatusInWater)
	if inWater.CanDelete(100, false) {
		t.Error("Expected owner not to delete once the vessel is in the water")
	}
	if !inWater.CanDelete(0, true) {
		t.Error("Expected staff to delete at any stage")
	}
}

func TestOnVessel(t *testing.T) {
	r := testReservation(t, StatusAtDock)

	if !r.OnVessel("  SEA BREEZE ") {
		t.Error("Expected vessel match under normalization")
	}
	if r.OnVessel("Wave Runner") {
		t.Error("Expected different vessel not to match")
	}
}

func TestOnVesselBlankNeverMatches(t *testing.T) {
	r, err := NewBuilder(100, "", calendar.Date("2026-08-30"), uuid.New()).Build()
	if err != nil {
		t.Fatalf("Failed to build reservation: %v", err)
	}

	if r.OnVessel("") {
		t.Error("Expected blank vessel names never to match each other")
	}
	if r.OnVessel("   ") {
		t.Error("Expected whitespace vessel name not to match a blank assignment")
	}
}

func TestBelongsTo(t *testing.T) {
	r := testReservation(t, StatusAtDock)

	if !r.BelongsTo(100) {
		t.Error("Expected reservation to belong to client 100")
	}
	if r.BelongsTo(200) {
		t.Error("Expected reservation not to belong to client 200")
	}
}
