package providers

import (
	"context"

	"roster-service/internal/domain/players"
)

// Page is one page of catalog players. A nil NextCursor signals end of
// data.
type Page struct {
	Players    []players.Player
	NextCursor *int
}

// PlayerCatalog defines how one page of upstream players is fetched and
// normalized. cursor is nil for the first page; perPage is the fixed
// page size the caller wants.
type PlayerCatalog interface {
	FetchPlayers(ctx context.Context, cursor *int, perPage int) (Page, error)
}
