package pgsql

import (
	portsrepo "github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:      newPgxAccountRepository(dbPool),
		JournalEntryRepo: newPgxJournalEntryRepository(dbPool),
		LedgerRepo:       newPgxLedgerRepository(dbPool),
		AuditRepo:        newPgxAuditRepository(dbPool),
		UnitOfWork:       newPgxUnitOfWorkFactory(dbPool),
	}
}
