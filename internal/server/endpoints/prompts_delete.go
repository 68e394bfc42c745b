package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// DeletePromptEndpoint handles DELETE /api/prompts/{id}.
type DeletePromptEndpoint struct{}

func (e *DeletePromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/prompts/{id}", e.handler
}

func (e *DeletePromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete a prompt
//	@Description	Remove a prompt from the log
//	@Tags			prompts
//	@Produce		json
//	@Param			id	path		string	true	"Prompt ID"
//	@Success		200	{object}	SuccessResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/prompts/{id} [delete]
func (e *DeletePromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.PromptStoreFrom(r.Context())

	if err := store.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Status: statusSuccess})
}

func (e *DeletePromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SuccessResponse
			if err := client.Delete(cmd.Context(), fmt.Sprintf("/api/prompts/%s", args[0]), &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
