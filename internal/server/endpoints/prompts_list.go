package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/promptlog"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// ListPromptsResponse is the response listing saved prompts.
type ListPromptsResponse struct {
	Status  string             `json:"status"`
	Prompts []promptlog.Prompt `json:"prompts"`
}

// ListPromptsEndpoint handles GET /api/prompts.
type ListPromptsEndpoint struct{}

func (e *ListPromptsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/prompts", e.handler
}

func (e *ListPromptsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List prompts
//	@Description	All saved prompts
//	@Tags			prompts
//	@Produce		json
//	@Success		200	{object}	ListPromptsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/prompts [get]
func (e *ListPromptsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.PromptStoreFrom(r.Context())

	prompts, err := store.List(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if prompts == nil {
		prompts = []promptlog.Prompt{}
	}

	writeJSON(w, http.StatusOK, ListPromptsResponse{Status: statusSuccess, Prompts: prompts})
}

func (e *ListPromptsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ListPromptsResponse
			if err := client.Get(cmd.Context(), "/api/prompts", &resp); err != nil {
				return err
			}
			return api.Output(resp.Prompts)
		},
	}
}
