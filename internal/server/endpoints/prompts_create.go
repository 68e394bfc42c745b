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

// PromptRequest is the request body for creating or updating a prompt.
type PromptRequest struct {
	Content string `json:"content"`
}

// CreatePromptResponse is the response for saving a prompt.
type CreatePromptResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// CreatePromptEndpoint handles POST /api/prompts.
type CreatePromptEndpoint struct{}

func (e *CreatePromptEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/prompts", e.handler
}

func (e *CreatePromptEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Save a prompt
//	@Description	Store a prompt for later reuse
//	@Tags			prompts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PromptRequest	true	"Prompt content"
//	@Success		201		{object}	CreatePromptResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/prompts [post]
func (e *CreatePromptEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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
	id, err := store.Save(r.Context(), req.Content)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatePromptResponse{Status: statusSuccess, ID: id})
}

func (e *CreatePromptEndpoint) Command(getServerURL func() string) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a new prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if content == "" {
				return fmt.Errorf("--content is required")
			}
			client := api.NewClient(getServerURL())
			var resp CreatePromptResponse
			if err := client.Post(cmd.Context(), "/api/prompts", PromptRequest{Content: content}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "Prompt content (required)")
	return cmd
}
