package ports

import (
	"context"

	"github.com/csg33k/vin-decoder/internal/domain"
)

// DecodeRepository defines persistence operations for the decode history.
type DecodeRepository interface {
	CreateDecode(ctx context.Context, d *domain.Decode) error
	GetDecode(ctx context.Context, id int64) (*domain.Decode, error)
	ListDecodes(ctx context.Context) ([]domain.Decode, error)
	DeleteDecode(ctx context.Context, id int64) error
}
