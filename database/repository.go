package database

// Repository exposes all entity operations over the store. Each operation
// is a single statement; callers compose related writes themselves and
// accept that there is no transaction spanning them.
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}
