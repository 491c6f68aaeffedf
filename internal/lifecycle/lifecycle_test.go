package lifecycle

import (
	"testing"

	"lunvee/internal/domain"
)

func TestNextWalksPipelineInOrder(t *testing.T) {
	for i, status := range domain.EventStatusOrder[:len(domain.EventStatusOrder)-1] {
		want := domain.EventStatusOrder[i+1]
		if got := Next(status); got != want {
			t.Errorf("Next(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestAdvanceTenTimesReachesTerminal(t *testing.T) {
	e := domain.Event{ID: "ev1", Status: domain.StatusCreated}
	for i := 0; i < 10; i++ {
		e = Advance(e)
	}
	if e.Status != domain.StatusCompleted {
		t.Fatalf("after 10 advances status = %q, want %q", e.Status, domain.StatusCompleted)
	}
}

func TestAdvanceTerminalIsNoop(t *testing.T) {
	e := domain.Event{ID: "ev1", Status: domain.StatusCompleted}
	e = Advance(e)
	if e.Status != domain.StatusCompleted {
		t.Fatalf("advancing terminal event changed status to %q", e.Status)
	}
}

func TestAdvanceAfterDirectOverride(t *testing.T) {
	// A manager may set the status straight to Execution; the next advance
	// must continue from there, not from how Execution was reached.
	e := domain.Event{ID: "ev1", Status: domain.StatusManagerAssigned}
	e.Status = domain.StatusExecution
	e = Advance(e)
	if e.Status != domain.StatusFeedbackCollection {
		t.Fatalf("advance after override = %q, want %q", e.Status, domain.StatusFeedbackCollection)
	}
}

func TestAssignManagerAutoAdvancesOnlyFromCreated(t *testing.T) {
	e := domain.Event{ID: "ev1", Status: domain.StatusCreated}
	e = AssignManager(e, "mgr1")
	if e.ManagerID != "mgr1" {
		t.Fatalf("manager id = %q, want mgr1", e.ManagerID)
	}
	if e.Status != domain.StatusManagerAssigned {
		t.Fatalf("status after first assignment = %q, want %q", e.Status, domain.StatusManagerAssigned)
	}

	// Reassigning at a later stage overwrites the manager but leaves status alone.
	e.Status = domain.StatusVendorSelection
	e = AssignManager(e, "mgr2")
	if e.ManagerID != "mgr2" {
		t.Fatalf("manager id after reassignment = %q, want mgr2", e.ManagerID)
	}
	if e.Status != domain.StatusVendorSelection {
		t.Fatalf("status after late assignment = %q, want %q", e.Status, domain.StatusVendorSelection)
	}
}

func TestAssignManagerIsIdempotent(t *testing.T) {
	e := domain.Event{ID: "ev1", Status: domain.StatusCreated}
	e = AssignManager(e, "mgr1")
	e = AssignManager(e, "mgr1")
	if e.ManagerID != "mgr1" || e.Status != domain.StatusManagerAssigned {
		t.Fatalf("repeated assignment gave manager %q status %q", e.ManagerID, e.Status)
	}
}

func TestProgress(t *testing.T) {
	if got := Progress(domain.StatusCreated); got != 0 {
		t.Errorf("Progress(created) = %d, want 0", got)
	}
	if got := Progress(domain.StatusCompleted); got != 10 {
		t.Errorf("Progress(terminal) = %d, want 10", got)
	}
	if got := Progress("No Such Stage"); got != -1 {
		t.Errorf("Progress(unknown) = %d, want -1", got)
	}
	if TotalStages() != 11 {
		t.Errorf("TotalStages() = %d, want 11", TotalStages())
	}
}

func TestValidStatusAndType(t *testing.T) {
	for _, s := range domain.EventStatusOrder {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	if ValidStatus("Cancelled") {
		t.Error("ValidStatus accepted an unknown stage")
	}
	if !ValidType(domain.TypeOthers) {
		t.Error("ValidType rejected Others")
	}
	if ValidType("Garage Sale") {
		t.Error("ValidType accepted an unknown type")
	}
}

func TestPermissionPolicy(t *testing.T) {
	admin := domain.User{ID: "adm", Role: domain.RoleAdmin}
	manager := domain.User{ID: "mgr", Role: domain.RoleManager}
	other := domain.User{ID: "mgr2", Role: domain.RoleManager}
	client := domain.User{ID: "cli", Role: domain.RoleClient}
	e := domain.Event{ID: "ev1", ClientID: "cli", ManagerID: "mgr", Status: domain.StatusInitialPlanning}

	if !CanAssignManager(admin) || CanAssignManager(manager) || CanAssignManager(client) {
		t.Error("only admin may assign a manager")
	}
	if !CanModify(manager, e) {
		t.Error("assigned manager must be able to modify the event")
	}
	if CanModify(other, e) || CanModify(admin, e) || CanModify(client, e) {
		t.Error("only the assigned manager may modify the event")
	}
	if CanModify(manager, domain.Event{ID: "ev2", Status: domain.StatusCreated}) {
		t.Error("an unassigned event must not be modifiable")
	}
	if !CanView(client, e) || !CanView(manager, e) || !CanView(admin, e) {
		t.Error("owner, assigned manager and admin must see the event")
	}
	if CanView(other, e) || CanView(domain.User{ID: "cli2", Role: domain.RoleClient}, e) {
		t.Error("unrelated users must not see the event")
	}
}
