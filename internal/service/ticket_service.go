package service

import (
	"errors"

	"github.com/emmanuelethelbert04/account-haven/internal/domain"
	"github.com/emmanuelethelbert04/account-haven/internal/metrics"
	"github.com/emmanuelethelbert04/account-haven/internal/models"
	"github.com/emmanuelethelbert04/account-haven/internal/repository"
)

var (
	ErrTicketFieldsRequired = errors.New("name, email, subject and message are required")
	ErrInvalidTicketStatus  = errors.New("invalid ticket status")
)

// TicketService tracks support tickets through the open / in_progress /
// resolved / closed workflow. Admins may move a ticket between any two
// states; only the target state is validated.
type TicketService struct {
	repo    *repository.TicketRepository
	metrics *metrics.MarketplaceMetrics
}

func NewTicketService(repo *repository.TicketRepository, m *metrics.MarketplaceMetrics) *TicketService {
	return &TicketService{repo: repo, metrics: m}
}

// Create opens a ticket from the public contact form.
func (s *TicketService) Create(name, email, subject, message string) (*models.SupportTicket, error) {
	if name == "" || email == "" || subject == "" || message == "" {
		return nil, ErrTicketFieldsRequired
	}
	t := &models.SupportTicket{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Status:  domain.TicketOpen,
	}
	if err := s.repo.Create(t); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.TicketsOpenedTotal.Inc()
	}
	return t, nil
}

// Update moves a ticket to the given status and optionally attaches or
// replaces the admin response.
func (s *TicketService) Update(id uint, status, response string) (*models.SupportTicket, error) {
	if !domain.ValidTicketStatus(status) {
		return nil, ErrInvalidTicketStatus
	}
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resolvedNow := status == domain.TicketResolved && t.Status != domain.TicketResolved
	t.Status = status
	if response != "" {
		t.AdminResponse = response
	}
	if err := s.repo.Update(t); err != nil {
		return nil, err
	}
	if resolvedNow && s.metrics != nil {
		s.metrics.TicketsResolvedTotal.Inc()
	}
	return t, nil
}

func (s *TicketService) List(status string, limit, offset int) ([]models.SupportTicket, error) {
	if status != "" && !domain.ValidTicketStatus(status) {
		return nil, ErrInvalidTicketStatus
	}
	return s.repo.List(status, limit, offset)
}
