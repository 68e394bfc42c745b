package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// ApproveRequest is the request body for approving a draft.
type ApproveRequest struct {
	PostID string `json:"post_id"`
}

// ApprovePostEndpoint handles POST /api/posts/approve.
type ApprovePostEndpoint struct{}

func (e *ApprovePostEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/posts/approve", e.handler
}

func (e *ApprovePostEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Approve and publish a draft
//	@Description	Publish a pending draft to its platform and mark it posted
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ApproveRequest	true	"Draft to approve"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/api/posts/approve [post]
func (e *ApprovePostEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req ApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PostID == "" {
		writeError(w, http.StatusBadRequest, "post_id is required")
		return
	}

	ctx := r.Context()
	store := svcctx.DraftStoreFrom(ctx)

	draft, err := store.FindByID(ctx, req.PostID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if draft.Status != drafts.StatusPending {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("post is not pending (status: %s)", draft.Status))
		return
	}

	publisher := svcctx.PublisherFrom(ctx)
	if err := publisher.Publish(ctx, draft); err != nil {
		writeErr(w, err)
		return
	}

	// The post is live at this point. A status update failure must not
	// pretend the publish was rolled back.
	if err := store.UpdateStatus(ctx, draft.ID, drafts.StatusPosted); err != nil {
		svcctx.LoggerFrom(ctx).Error("post published but status update failed", "id", draft.ID, "error", err)
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("post was published to %s but its status could not be updated", draft.Platform))
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{
		Status:  statusSuccess,
		Message: fmt.Sprintf("published to %s", draft.Platform),
	})
}

func (e *ApprovePostEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending draft and publish it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SuccessResponse
			if err := client.Post(cmd.Context(), "/api/posts/approve", ApproveRequest{PostID: args[0]}, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
