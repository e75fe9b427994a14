package service

import (
	"context"

	"github.com/morfo-lang/morfo"
)

// CardSource is what the service needs from card storage. Cards are
// immutable once loaded; implementations may share them freely between
// calls.
type CardSource interface {
	Card(ctx context.Context, language string) (*morfo.Card, error)
	ListCards(ctx context.Context) ([]*morfo.Card, error)
}
