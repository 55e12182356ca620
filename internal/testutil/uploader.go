package testutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/segmentio/kafka-go"
)

var ErrHostDown = errors.New("image host unavailable")

// Uploader records calls instead of talking to an image host.
type Uploader struct {
	mu         sync.Mutex
	Uploaded   []string
	Destroyed  []string
	UploadErr  error
	DestroyErr error
}

func (u *Uploader) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, err := io.Copy(io.Discard, file); err != nil {
		return "", err
	}

	u.Uploaded = append(u.Uploaded, publicID)
	if u.UploadErr != nil {
		return "", u.UploadErr
	}

	return fmt.Sprintf("https://res.cloudinary.com/test/image/upload/v1/%s.jpg", publicID), nil
}

func (u *Uploader) Destroy(ctx context.Context, publicID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	// a cancelled request never reaches the host
	if err := ctx.Err(); err != nil {
		return err
	}

	u.Destroyed = append(u.Destroyed, publicID)
	return u.DestroyErr
}

func (u *Uploader) UploadCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.Uploaded)
}

func (u *Uploader) DestroyCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.Destroyed)
}

// Publisher captures published events.
type Publisher struct {
	mu       sync.Mutex
	Messages []kafka.Message
	Err      error
}

func (p *Publisher) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Err != nil {
		return p.Err
	}
	p.Messages = append(p.Messages, msgs...)
	return nil
}

func (p *Publisher) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Messages)
}
