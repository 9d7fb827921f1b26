package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/studioboard/internal/studio"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	clients := []studio.ClientRecord{{FirstName: "Asha"}, {FirstName: "Vikram"}}

	before := time.Now()
	s.Update(clients, nil)

	snap := s.Snapshot()
	if !snap.HasData {
		t.Fatalf("HasData = false, want true")
	}
	if len(snap.Clients) != 2 || snap.Clients[0].FirstName != "Asha" {
		t.Fatalf("snapshot clients = %#v, want 2 items", snap.Clients)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Clients[0].FirstName = "Changed"
	snap2 := s.Snapshot()
	if snap2.Clients[0].FirstName != "Asha" {
		t.Fatalf("Snapshot should clone clients; got %q want Asha", snap2.Clients[0].FirstName)
	}

	// Nor should the caller's slice leak into the store.
	clients[1].FirstName = "Mutated"
	if got := s.Snapshot().Clients[1].FirstName; got != "Vikram" {
		t.Fatalf("Update should clone input; got %q want Vikram", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]studio.ClientRecord{{FirstName: "Asha"}}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.HasData != prev.HasData {
		t.Fatalf("HasData changed on error: got %v want %v", snap.HasData, prev.HasData)
	}
	if len(snap.Clients) != 1 || snap.Clients[0].FirstName != "Asha" {
		t.Fatalf("clients changed on error: got %#v want %#v", snap.Clients, prev.Clients)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_EmptySuccessfulUpdateHasData(t *testing.T) {
	var s Store
	if s.Snapshot().HasData {
		t.Fatalf("zero Store should report HasData=false")
	}
	s.Update(nil, nil)
	snap := s.Snapshot()
	if !snap.HasData {
		t.Fatalf("HasData = false after successful empty update, want true")
	}
	if snap.Clients != nil {
		t.Fatalf("Clients = %#v, want nil", snap.Clients)
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("fresh store: failures=%d offline=%v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 || snap.IsOffline() {
		t.Fatalf("after 1 failure: failures=%d offline=%v, want 1/false", snap.ConsecutiveFailures, snap.IsOffline())
	}

	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 || !snap.IsOffline() {
		t.Fatalf("after 2 failures: failures=%d offline=%v, want 2/true", snap.ConsecutiveFailures, snap.IsOffline())
	}

	// Success resets counter
	s.Update([]studio.ClientRecord{{FirstName: "Asha"}}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("after success: failures=%d offline=%v, want 0/false", snap.ConsecutiveFailures, snap.IsOffline())
	}
}
