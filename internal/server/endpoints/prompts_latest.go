package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/promptlog"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// PromptResponse is the response carrying a single prompt.
type PromptResponse struct {
	Status string           `json:"status"`
	Prompt promptlog.Prompt `json:"prompt"`
}

// LatestPromptEndpoint handles GET /api/prompts/latest.
// The literal segment wins over the {id} pattern on the mux.
type LatestPromptEndpoint struct{}

func (e *LatestPromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/prompts/latest", e.handler
}

func (e *LatestPromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Latest prompt
//	@Description	The most recently created prompt
//	@Tags			prompts
//	@Produce		json
//	@Success		200	{object}	PromptResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/prompts/latest [get]
func (e *LatestPromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.PromptStoreFrom(r.Context())

	prompt, err := store.Latest(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PromptResponse{Status: statusSuccess, Prompt: *prompt})
}

func (e *LatestPromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "latest",
		Short: "Show the most recently created prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PromptResponse
			if err := client.Get(cmd.Context(), "/api/prompts/latest", &resp); err != nil {
				return err
			}
			return api.Output(resp.Prompt)
		},
	}
}
