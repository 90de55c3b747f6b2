package sweeper

import (
	"context"

	"courtbooking/internal/repository"
)

type OccupancyRepository interface {
	ListElapsedReserved(ctx context.Context, date, clock string) ([]repository.ElapsedSlot, error)
	Release(ctx context.Context, id int64) (bool, error)
}
