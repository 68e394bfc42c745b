package endpoints

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/draftdeck/draftdeck/internal/api"
	"github.com/draftdeck/draftdeck/internal/drafts"
	"github.com/draftdeck/draftdeck/internal/svcctx"
)

// GroupedResponse is the response for the grouped review view.
// Posts is keyed by weekday name, then by platform.
type GroupedResponse struct {
	Status string                                     `json:"status"`
	Posts  map[string]map[string][]drafts.GroupedPost `json:"posts"`
}

// GroupedPostsEndpoint handles GET /api/posts/grouped.
type GroupedPostsEndpoint struct{}

func (e *GroupedPostsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/posts/grouped", e.handler
}

func (e *GroupedPostsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Pending drafts grouped by day and platform
//	@Description	Pending drafts bucketed by weekday name, then platform
//	@Tags			posts
//	@Produce		json
//	@Success		200	{object}	GroupedResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/posts/grouped [get]
func (e *GroupedPostsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.DraftStoreFrom(r.Context())

	posts, err := store.FindByStatus(r.Context(), drafts.StatusPending)
	if err != nil {
		writeErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GroupedResponse{
		Status: statusSuccess,
		Posts:  drafts.GroupPending(posts, time.Now()),
	})
}

func (e *GroupedPostsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "grouped",
		Short: "List pending drafts grouped by day and platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp GroupedResponse
			if err := client.Get(cmd.Context(), "/api/posts/grouped", &resp); err != nil {
				return err
			}
			return api.Output(resp.Posts)
		},
	}
}
