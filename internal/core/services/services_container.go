package services

import (
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_engine/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...JournalEntryServiceOption) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.AccountRepo, repos.LedgerRepo)

	return &portssvc.ServiceContainer{
		JournalEntry: NewJournalEntryService(
			repos.AccountRepo,
			repos.JournalEntryRepo,
			repos.AuditRepo,
			repos.UnitOfWork,
			options...,
		),
		Account: ledger,
		Ledger:  ledger,
	}
}
