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

// UpdatePostRequest is the request body for editing a draft.
type UpdatePostRequest struct {
	Content string `json:"content"`
}

// UpdatePostEndpoint handles PUT /api/posts/{id}.
type UpdatePostEndpoint struct{}

func (e *UpdatePostEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/posts/{id}", e.handler
}

func (e *UpdatePostEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Edit a draft
//	@Description	Replace a pending draft's content. Platform and status are untouched.
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Draft ID"
//	@Param			request	body		UpdatePostRequest	true	"New content"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/posts/{id} [put]
func (e *UpdatePostEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}

	store := svcctx.DraftStoreFrom(r.Context())
	if err := store.UpdateContent(r.Context(), id, req.Content); err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Status: statusSuccess})
}

func (e *UpdatePostEndpoint) Command(getServerURL func() string) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a pending draft's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if content == "" {
				return fmt.Errorf("--content is required")
			}
			client := api.NewClient(getServerURL())
			var resp SuccessResponse
			path := fmt.Sprintf("/api/posts/%s", args[0])
			if err := client.Put(cmd.Context(), path, UpdatePostRequest{Content: content}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "Replacement content (required)")
	return cmd
}
