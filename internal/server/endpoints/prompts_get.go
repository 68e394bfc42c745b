package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// GetPromptEndpoint handles GET /api/prompts/{id}.
type GetPromptEndpoint struct{}

func (e *GetPromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/prompts/{id}", e.handler
}

func (e *GetPromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get a prompt
//	@Description	Fetch a single prompt by ID
//	@Tags			prompts
//	@Produce		json
//	@Param			id	path		string	true	"Prompt ID"
//	@Success		200	{object}	PromptResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/prompts/{id} [get]
func (e *GetPromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.PromptStoreFrom(r.Context())

	prompt, err := store.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PromptResponse{Status: statusSuccess, Prompt: *prompt})
}

func (e *GetPromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a prompt by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PromptResponse
			if err := client.Get(cmd.Context(), fmt.Sprintf("/api/prompts/%s", args[0]), &resp); err != nil {
				return err
			}
			return api.Output(resp.Prompt)
		},
	}
}
