package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores rows in memory and is safe for concurrent use. Used for
// local development without a database and in tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Row

	// now is swappable so tests can control uploaded_at.
	now func() time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int64]Row),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Insert stores the row, assigning id and uploaded_at.
func (r *MemoryRepo) Insert(ctx context.Context, row Row) (int64, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	row.ID = r.nextID
	row.UploadedAt = r.now()
	r.nextID++
	r.byID[row.ID] = row
	return row.ID, row.UploadedAt, nil
}

// ListSummaries returns summaries ordered by uploaded_at descending, ties by
// id descending.
func (r *MemoryRepo) ListSummaries(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := make([]Row, 0, len(r.byID))
	for _, row := range r.byID {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].UploadedAt.Equal(rows[j].UploadedAt) {
			return rows[i].UploadedAt.After(rows[j].UploadedAt)
		}
		return rows[i].ID > rows[j].ID
	})

	out := make([]Summary, 0, len(rows))
	for _, row := range rows {
		out = append(out, Summary{
			ID:           row.ID,
			FileName:     row.FileName,
			UploadedAt:   row.UploadedAt,
			Name:         row.Name,
			Email:        row.Email,
			Phone:        row.Phone,
			ResumeRating: row.ResumeRating,
		})
	}
	return out, nil
}

// GetByID returns the stored row or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Row, error) {
	if err := ctx.Err(); err != nil {
		return Row{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.byID[id]
	if !ok {
		return Row{}, ErrNotFound
	}
	return row, nil
}

var _ Repo = (*MemoryRepo)(nil)
