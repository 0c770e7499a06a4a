package ports

import (
	"context"

	"github.com/aalvaropc/wxsend/internal/domain"
)

// MessageSender delivers a message with an attached file to a person.
type MessageSender interface {
	SendMessage(ctx context.Context, msg domain.Message) (domain.SendResult, error)
}
