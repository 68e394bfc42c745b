package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// PendingResponse is the response listing pending drafts.
type PendingResponse struct {
	Status string         `json:"status"`
	Posts  []drafts.Draft `json:"posts"`
}

// PendingPostsEndpoint handles GET /api/posts/pending.
type PendingPostsEndpoint struct{}

func (e *PendingPostsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/posts/pending", e.handler
}

func (e *PendingPostsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List pending drafts
//	@Description	All drafts awaiting review and approval
//	@Tags			posts
//	@Produce		json
//	@Success		200	{object}	PendingResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/posts/pending [get]
func (e *PendingPostsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.DraftStoreFrom(r.Context())

	posts, err := store.FindByStatus(r.Context(), drafts.StatusPending)
	if err != nil {
		writeErr(w, err)
		return
	}
	if posts == nil {
		posts = []drafts.Draft{}
	}

	writeJSON(w, http.StatusOK, PendingResponse{Status: statusSuccess, Posts: posts})
}

func (e *PendingPostsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List pending post drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp PendingResponse
			if err := client.Get(cmd.Context(), "/api/posts/pending", &resp); err != nil {
				return err
			}
			return api.Output(resp.Posts)
		},
	}
}
