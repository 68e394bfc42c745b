// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/defra"
	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/home"
	"github.com/draftdeck/draftdeck/internal/promptlog"
	"github.com/draftdeck/draftdeck/internal/providers"
	"github.com/draftdeck/draftdeck/internal/publish"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	DefraClient *defra.Client
	Drafts      drafts.Store
	Prompts     promptlog.Store
	Registry    *providers.Registry
	Publisher   *publish.Publisher
	Logger      *slog.Logger
	Home        *home.Dir
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// DefraClientFrom extracts the DefraDB client from context.
func DefraClientFrom(ctx context.Context) *defra.Client {
	if s := ServicesFrom(ctx); s != nil {
		return s.DefraClient
	}
	return nil
}

// DraftStoreFrom extracts the draft store from context.
func DraftStoreFrom(ctx context.Context) drafts.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Drafts
	}
	return nil
}

// PromptStoreFrom extracts the prompt store from context.
func PromptStoreFrom(ctx context.Context) promptlog.Store {
	if s := ServicesFrom(ctx); s != nil {
		return s.Prompts
	}
	return nil
}

// RegistryFrom extracts the provider registry from context.
func RegistryFrom(ctx context.Context) *providers.Registry {
	if s := ServicesFrom(ctx); s != nil {
		return s.Registry
	}
	return nil
}

// PublisherFrom extracts the publisher from context.
func PublisherFrom(ctx context.Context) *publish.Publisher {
	if s := ServicesFrom(ctx); s != nil {
		return s.Publisher
	}
	return nil
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}
