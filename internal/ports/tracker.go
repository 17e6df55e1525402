package ports

import (
	"context"

	"timelog/internal/domain"
)

// TicketTracker is the remote issue tracker worklogs are synced to
type TicketTracker interface {
	FetchTicket(ctx context.Context, key string) (*domain.Ticket, error)
	ListWorklogs(ctx context.Context, key string) ([]domain.RemoteWorklog, error)
	AddWorklog(ctx context.Context, entry domain.SyncEntry) error
}
