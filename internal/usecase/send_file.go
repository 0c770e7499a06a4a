package usecase

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aalvaropc/wxsend/internal/domain"
	"github.com/aalvaropc/wxsend/internal/ports"
)

type SendFile struct {
	people   ports.PersonDirectory
	messages ports.MessageSender
	logger   *slog.Logger
}

type SendFileOption func(*SendFile)

func WithLogger(l *slog.Logger) SendFileOption {
	return func(uc *SendFile) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewSendFile(pd ports.PersonDirectory, ms ports.MessageSender, opts ...SendFileOption) *SendFile {
	uc := &SendFile{
		people:   pd,
		messages: ms,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute checks that the file exists, resolves the recipient and delivers the
// message. Each step runs once; the first failure ends the run.
func (uc *SendFile) Execute(ctx context.Context, d domain.Delivery) (domain.Receipt, error) {
	if err := CheckFile(d.FilePath); err != nil {
		return domain.Receipt{}, err
	}

	person, err := uc.people.LookupPerson(ctx, d.RecipientEmail)
	if err != nil {
		return domain.Receipt{}, err
	}
	uc.logger.Debug("send_file.lookup.done",
		"email", d.RecipientEmail,
		"person_id", person.ID,
		"display_name", person.DisplayName)

	res, err := uc.messages.SendMessage(ctx, domain.Message{
		ToPersonID: person.ID,
		Text:       d.Text,
		FilePath:   d.FilePath,
	})
	if err != nil {
		return domain.Receipt{}, err
	}
	uc.logger.Debug("send_file.deliver.done",
		"person_id", person.ID,
		"status", res.StatusCode,
		"duration", res.Duration)

	return domain.Receipt{
		RecipientEmail: d.RecipientEmail,
		PersonID:       person.ID,
		StatusCode:     res.StatusCode,
		Duration:       res.Duration,
	}, nil
}

// CheckFile only checks that the path names something; readability is
// discovered when the upload is built. It needs no credentials, so callers
// run it before loading configuration.
func CheckFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &domain.OpError{
			Op:   "usecase.send_file",
			Kind: domain.KindInput,
			Path: path,
			Err:  domain.ErrFileNotFound,
		}
	}
	return nil
}
