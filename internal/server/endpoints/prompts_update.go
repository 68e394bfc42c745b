package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// UpdatePromptEndpoint handles PUT /api/prompts/{id}.
type UpdatePromptEndpoint struct{}

func (e *UpdatePromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/prompts/{id}", e.handler
}

func (e *UpdatePromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Update a prompt
//	@Description	Replace a prompt's content
//	@Tags			prompts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Prompt ID"
//	@Param			request	body		PromptRequest	true	"New content"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/prompts/{id} [put]
func (e *UpdatePromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	store := svcctx.PromptStoreFrom(r.Context())
	if err := store.Update(r.Context(), r.PathValue("id"), req.Content); err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Status: statusSuccess})
}

func (e *UpdatePromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a prompt's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if content == "" {
				return fmt.Errorf("--content is required")
			}
			client := api.NewClient(getServerURL())
			var resp SuccessResponse
			path := fmt.Sprintf("/api/prompts/%s", args[0])
			if err := client.Put(cmd.Context(), path, PromptRequest{Content: content}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "Replacement content (required)")
	return cmd
}
