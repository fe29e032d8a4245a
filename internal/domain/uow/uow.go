package uow

import (
	"context"

	"edulend-backend/internal/domain/application"
	"edulend-backend/internal/domain/document"
	"edulend-backend/internal/domain/history"
	"edulend-backend/internal/domain/note"
)

type Repos struct {
	Applications application.Repository
	Documents    document.Repository
	History      history.Repository
	Notes        note.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, appID string, fn func(r Repos, a *application.Application) error) error
}
