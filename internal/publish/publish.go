// Package publish routes approved drafts to the social client for
// their platform.
package publish

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/providers"
)

// ErrUnknownPlatform is returned when a draft's platform has no
// publishing implementation at all.
type ErrUnknownPlatform struct {
	Platform string
}

func (e *ErrUnknownPlatform) Error() string {
	return fmt.Sprintf("unknown platform: %s", e.Platform)
}

// PublishError wraps a social client failure with the platform it
// happened on.
type PublishError struct {
	Platform string
	Err      error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("failed to publish to %s: %v", e.Platform, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// Publisher dispatches drafts to the registered social clients.
type Publisher struct {
	registry *providers.Registry
	logger   *slog.Logger
}

// New creates a Publisher backed by the given provider registry.
func New(registry *providers.Registry, logger *slog.Logger) *Publisher {
	return &Publisher{
		registry: registry,
		logger:   logger,
	}
}

// Publish sends the draft's content to its platform. It does not touch
// the draft's stored status; that is the caller's job after a
// successful publish.
func (p *Publisher) Publish(ctx context.Context, draft *drafts.Draft) error {
	switch draft.Platform {
	case drafts.PlatformTwitter, drafts.PlatformLinkedIn:
	default:
		return &ErrUnknownPlatform{Platform: string(draft.Platform)}
	}

	client, err := p.registry.Social(string(draft.Platform))
	if err != nil {
		return err
	}

	p.logger.Info("publishing draft", "id", draft.ID, "platform", draft.Platform)
	if err := client.Publish(ctx, draft.Content); err != nil {
		return &PublishError{Platform: string(draft.Platform), Err: err}
	}

	p.logger.Info("draft published", "id", draft.ID, "platform", draft.Platform)
	return nil
}
