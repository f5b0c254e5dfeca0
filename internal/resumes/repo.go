package resumes

import (
	"context"
	"time"
)

// Repo defines persistence operations for analyzed resumes. The store owns
// row identity and the upload timestamp.
type Repo interface {
	Insert(ctx context.Context, row Row) (int64, time.Time, error)
	ListSummaries(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, id int64) (Row, error)
}
