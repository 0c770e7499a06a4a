package ports

import (
	"context"

	"github.com/aalvaropc/wxsend/internal/domain"
)

// PersonDirectory resolves an email address to a platform account.
type PersonDirectory interface {
	LookupPerson(ctx context.Context, email string) (domain.Person, error)
}
