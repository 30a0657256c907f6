package lead

import "context"

// Repository stores captured leads. The marketing site only ever appends and
// lets the sales tooling read; there is no update path.
type Repository interface {
	Create(ctx context.Context, l *Lead) error
	Get(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context) ([]*Lead, error)
	Count(ctx context.Context) (int, error)
}
