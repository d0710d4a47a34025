package interfaces

import (
	"context"
	"time"

	"os_financeiro/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for installment rows.
//
// The batch operations are all-or-nothing:
//   - CreateBatch writes every row and claims the service call's generation guard in a
//     single transaction; it fails with ErrConcurrentModification if the guard is taken.
//   - DeleteAllByServiceCallID removes every row and releases the guard in a single
//     transaction; it fails with ErrConcurrentModification when rows changed meanwhile.
//   - DeleteOpen keeps the guard's row count in step with the delete, and ReleaseGuard
//     only releases a guard whose group has no rows left.
//
// The *Open methods only touch rows whose status is aberto and return a zero value
// when the row is missing or no longer open.

type ITransactionRepository interface {
	CreateBatch(ctx context.Context, serviceCallID, groupID string, txs []entities.FinancialTransaction) error
	GetByID(ctx context.Context, id string) (entities.FinancialTransaction, error)
	ListByServiceCallID(ctx context.Context, serviceCallID string) ([]entities.FinancialTransaction, error)
	UpdateOpen(ctx context.Context, id string, patch entities.TransactionPatch) (entities.FinancialTransaction, error)
	TransitionFromOpen(ctx context.Context, id string, status entities.TransactionStatus, paidAt *time.Time) (entities.FinancialTransaction, error)
	DeleteOpen(ctx context.Context, id string) (entities.FinancialTransaction, error)
	DeleteAllByServiceCallID(ctx context.Context, serviceCallID string) (int, error)
	ReleaseGuard(ctx context.Context, serviceCallID, groupID string) error
}
