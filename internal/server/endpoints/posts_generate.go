package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// GenerateRequest is the request body for generating post drafts.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse is the response for generating post drafts.
type GenerateResponse struct {
	Status  string `json:"status"`
	Count   int    `json:"count"`
	Warning string `json:"warning,omitempty"`
}

// GeneratePostsEndpoint handles POST /api/posts/generate.
type GeneratePostsEndpoint struct{}

func (e *GeneratePostsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/posts/generate", e.handler
}

func (e *GeneratePostsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Generate post drafts
//	@Description	Run the prompt through the completion provider, split the output into posts, classify each by platform, and store them as pending drafts
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GenerateRequest	true	"Generation prompt"
//	@Success		200		{object}	GenerateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/posts/generate [post]
func (e *GeneratePostsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	ctx := r.Context()
	logger := svcctx.LoggerFrom(ctx)

	registry := svcctx.RegistryFrom(ctx)
	completion, err := registry.Completion()
	if err != nil {
		writeErr(w, err)
		return
	}

	content, err := completion.Complete(ctx, req.Prompt)
	if err != nil {
		writeErr(w, err)
		return
	}

	store := svcctx.DraftStoreFrom(ctx)
	posts := drafts.SplitPosts(content)
	for _, post := range posts {
		platform := drafts.ClassifyPlatform(post)
		if _, err := store.Insert(ctx, post, platform); err != nil {
			writeErr(w, err)
			return
		}
	}

	resp := GenerateResponse{Status: statusSuccess, Count: len(posts)}

	// The drafts are already stored at this point, so a prompt log
	// failure downgrades to a warning instead of failing the request.
	prompts := svcctx.PromptStoreFrom(ctx)
	if _, err := prompts.Save(ctx, req.Prompt); err != nil {
		logger.Warn("failed to record prompt after generation", "error", err)
		resp.Warning = "posts generated but prompt was not recorded"
	}

	writeJSON(w, http.StatusOK, resp)
}

func (e *GeneratePostsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var prompt string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate post drafts from a prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt == "" {
				return fmt.Errorf("--prompt is required")
			}
			client := api.NewClient(getServerURL())
			var resp GenerateResponse
			if err := client.Post(cmd.Context(), "/api/posts/generate", GenerateRequest{Prompt: prompt}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Generation prompt (required)")
	return cmd
}
