package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTicketServiceTestDB(t *testing.T) *TicketService {
	t.Helper()
	dsn := fmt.Sprintf("file:ticket_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.SupportTicket{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewTicketService(repository.NewTicketRepository(db), nil)
}

func TestCreateTicketOpensWithAllFields(t *testing.T) {
	svc := setupTicketServiceTestDB(t)

	ticket, err := svc.Create("Jane", "jane@example.com", "Login issue", "I cannot access the delivered account.")
	if err != nil {
		t.Fatalf("create ticket failed: %v", err)
	}
	if ticket.Status != domain.TicketOpen {
		t.Errorf("status = %q, want open", ticket.Status)
	}

	if _, err := svc.Create("", "jane@example.com", "x", "y"); !errors.Is(err, ErrTicketFieldsRequired) {
		t.Fatalf("err = %v, want ErrTicketFieldsRequired", err)
	}
	if _, err := svc.Create("Jane", "jane@example.com", "x", ""); !errors.Is(err, ErrTicketFieldsRequired) {
		t.Fatalf("err = %v, want ErrTicketFieldsRequired", err)
	}
}

func TestUpdateTicketStatusAndResponse(t *testing.T) {
	svc := setupTicketServiceTestDB(t)

	ticket, err := svc.Create("Jane", "jane@example.com", "Login issue", "Details here.")
	if err != nil {
		t.Fatalf("create ticket failed: %v", err)
	}

	updated, err := svc.Update(ticket.ID, domain.TicketInProgress, "Looking into this now.")
	if err != nil {
		t.Fatalf("update ticket failed: %v", err)
	}
	if updated.Status != domain.TicketInProgress {
		t.Errorf("status = %q, want in_progress", updated.Status)
	}
	if updated.AdminResponse != "Looking into this now." {
		t.Errorf("admin response = %q", updated.AdminResponse)
	}

	// An empty response keeps the previous one.
	updated, err = svc.Update(ticket.ID, domain.TicketResolved, "")
	if err != nil {
		t.Fatalf("update ticket failed: %v", err)
	}
	if updated.AdminResponse != "Looking into this now." {
		t.Errorf("admin response lost: %q", updated.AdminResponse)
	}

	if _, err := svc.Update(ticket.ID, "escalated", ""); !errors.Is(err, ErrInvalidTicketStatus) {
		t.Fatalf("err = %v, want ErrInvalidTicketStatus", err)
	}
}

func TestListTicketsFiltersByStatus(t *testing.T) {
	svc := setupTicketServiceTestDB(t)

	a, _ := svc.Create("A", "a@example.com", "One", "First ticket.")
	if _, err := svc.Create("B", "b@example.com", "Two", "Second ticket."); err != nil {
		t.Fatalf("create ticket failed: %v", err)
	}
	if _, err := svc.Update(a.ID, domain.TicketClosed, ""); err != nil {
		t.Fatalf("update ticket failed: %v", err)
	}

	open, err := svc.List(domain.TicketOpen, 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(open) != 1 {
		t.Errorf("open tickets = %d, want 1", len(open))
	}

	all, err := svc.List("", 10, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all tickets = %d, want 2", len(all))
	}

	if _, err := svc.List("bogus", 10, 0); !errors.Is(err, ErrInvalidTicketStatus) {
		t.Fatalf("err = %v, want ErrInvalidTicketStatus", err)
	}
}
