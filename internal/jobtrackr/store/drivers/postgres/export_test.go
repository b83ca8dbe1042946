package postgres

import "context"

// Truncate empties every table between conformance subtests.
func Truncate(ctx context.Context, s *Store) error {
	_, err := s.pool.Exec(ctx, `TRUNCATE jobs, users`)
	return err
}
