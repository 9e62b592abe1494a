package abstraction

import "context"

type Deleter interface {
	Delete(ctx context.Context, id string) error
}
