package reservation

import (
	"testing"
	"time"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/google/uuid"
)

func TestCreatedEventProvider(t *testing.T) {
	reservationId := uint32(1)
	clientId := uint32(100)

	provider := CreatedEventProvider(reservationId, clientId, "Sea Breeze", "2026-08-30", "morning", "north cove", time.Now())

	messages, err := provider()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	msg := messages[0]
	expectedKey := producer.CreateKey(int(clientId))
	if string(msg.Key) != string(expectedKey) {
		t.Errorf("Expected key %s, got %s", expectedKey, msg.Key)
	}

	if msg.Value == nil {
		t.Error("Expected message value to be set")
	}
}

func TestStatusAdvancedEventProvider(t *testing.T) {
	clientId := uint32(100)

	provider := StatusAdvancedEventProvider(1, clientId, StatusAtDock, StatusInWater, time.Now())

	messages, err := provider()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	expectedKey := producer.CreateKey(int(clientId))
	if string(messages[0].Key) != string(expectedKey) {
		t.Errorf("Expected key %s, got %s", expectedKey, messages[0].Key)
	}
}

func TestFuelEvidenceSharedEventProviderKeyedToPreviousRenter(t *testing.T) {
	previousClientId := uint32(200)

	provider := FuelEvidenceSharedEventProvider(2, 1, previousClientId, "Jordan", "jordan@pay")

	messages, err := provider()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	expectedKey := producer.CreateKey(int(previousClientId))
	if string(messages[0].Key) != string(expectedKey) {
		t.Errorf("Expected key %s, got %s", expectedKey, messages[0].Key)
	}
}

func TestMaintenanceSetEventProvider(t *testing.T) {
	provider := MaintenanceSetEventProvider("Sea Breeze", "2026-09-01")

	messages, err := provider()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
}

func TestDayUnlockedEventProvider(t *testing.T) {
	provider := DayUnlockedEventProvider(uuid.New(), "2026-08-30")

	messages, err := provider()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
}

func TestErrorEventProvider(t *testing.T) {
	clientId := uint32(100)

	provider := ErrorEventProvider(clientId, 1, "DATE_TAKEN_BY_OTHER", "date already booked by another owner: Riley")

	messages, err := provider()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}

	expectedKey := producer.CreateKey(int(clientId))
	if string(messages[0].Key) != string(expectedKey) {
		t.Errorf("Expected key %s, got %s", expectedKey, messages[0].Key)
	}
}
