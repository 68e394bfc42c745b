package endpoints

import (
	"time"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/defra"
)

// Config holds dependencies needed by some endpoints.
type Config struct {
	DefraManager    *defra.DockerManager
	SwaggerSpecPath string
	Started         time.Time
}

// All returns all endpoint instances.
func All(cfg Config) []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatusEndpoint{DefraManager: cfg.DefraManager, Started: cfg.Started},

		// Post endpoints
		&GeneratePostsEndpoint{},
		&PendingPostsEndpoint{},
		&GroupedPostsEndpoint{},
		&UpdatePostEndpoint{},
		&ApprovePostEndpoint{},

		// Prompt endpoints. Latest must exist alongside the {id} routes;
		// the mux picks the literal segment over the wildcard.
		&CreatePromptEndpoint{},
		&ListPromptsEndpoint{},
		&LatestPromptEndpoint{},
		&GetPromptEndpoint{},
		&UpdatePromptEndpoint{},
		&DeletePromptEndpoint{},

		// Swagger/OpenAPI endpoints
		&SwaggerEndpoint{SpecPath: cfg.SwaggerSpecPath},
		&SwaggerUIEndpoint{},
	}
}

// PostCommands returns the endpoints grouped under the "posts" CLI
// subcommand.
func PostCommands() []api.Endpoint {
	return []api.Endpoint{
		&GeneratePostsEndpoint{},
		&PendingPostsEndpoint{},
		&GroupedPostsEndpoint{},
		&UpdatePostEndpoint{},
		&ApprovePostEndpoint{},
	}
}

// PromptCommands returns the endpoints grouped under the "prompts" CLI
// subcommand.
func PromptCommands() []api.Endpoint {
	return []api.Endpoint{
		&CreatePromptEndpoint{},
		&ListPromptsEndpoint{},
		&LatestPromptEndpoint{},
		&GetPromptEndpoint{},
		&UpdatePromptEndpoint{},
		&DeletePromptEndpoint{},
	}
}
