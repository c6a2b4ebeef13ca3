package services

import (
	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher events.LedgerEventPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, WithLedgerReader(repos.LedgerRepo)),
		Ledger:    NewLedgerService(repos.TxManager, WithEventPublisher(publisher)),
		Statement: NewStatementService(repos.AccountRepo, repos.LedgerRepo),
	}
}
