package commands

import (
	"context"
	"fmt"

	"timelog/internal/application"
	"timelog/internal/domain"
	"timelog/internal/ports"
)

// FetchResult contains the document created for a fetched ticket
type FetchResult struct {
	Document domain.Document
	Message  string
}

// FetchCommand pulls a ticket from the tracker and creates its document
type FetchCommand struct {
	repo    ports.DocumentRepository
	tracker ports.TicketTracker
	Key     string
	Base    string
}

// NewFetchCommand creates a new FetchCommand
func NewFetchCommand(repo ports.DocumentRepository, tracker ports.TicketTracker, key, base string) *FetchCommand {
	return &FetchCommand{
		repo:    repo,
		tracker: tracker,
		Key:     key,
		Base:    base,
	}
}

// Validate checks if the fetch operation is valid
func (c *FetchCommand) Validate() error {
	return application.ValidateTicketKey("ticketKey", c.Key)
}

// Execute runs the fetch command
func (c *FetchCommand) Execute(ctx context.Context) (*FetchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ticket, err := c.tracker.FetchTicket(ctx, c.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", c.Key, err)
	}

	doc := domain.NewTicketDocument(c.repo.Root(), c.Base, ticket)
	if err := c.repo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", doc.Path, err)
	}

	return &FetchResult{
		Document: doc,
		Message:  fmt.Sprintf("Created %s", doc.Path),
	}, nil
}
