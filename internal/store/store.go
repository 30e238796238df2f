// Package store holds the application state as three independent,
// mutex-guarded slices. Mutations are synchronous and atomic; readers
// always observe a committed snapshot. The auth and teams slices accept
// an after-commit change callback so a persister can snapshot them
// without the reducers knowing about storage.
package store

// Store bundles the three state slices. It is created by the
// composition root and passed by reference; nothing reads it through a
// global.
type Store struct {
	Auth    *AuthSlice
	Teams   *TeamSlice
	Catalog *CatalogSlice
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		Auth:    NewAuthSlice(),
		Teams:   NewTeamSlice(),
		Catalog: NewCatalogSlice(),
	}
}
