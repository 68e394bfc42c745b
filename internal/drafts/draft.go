// Package drafts implements post draft generation rules and storage:
// splitting completion text into posts, classifying each post by
// platform, and persisting drafts through their pending -> posted
// lifecycle.
package drafts

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Platform identifies the social platform a draft targets.
// It is fixed at classification time and never changes afterwards.
type Platform string

const (
	PlatformTwitter  Platform = "twitter"
	PlatformLinkedIn Platform = "linkedin"
)

// TwitterMaxChars is the length cutoff for the twitter platform.
const TwitterMaxChars = 280

// Status is the lifecycle state of a draft. The only transition is
// pending -> posted.
type Status string

const (
	StatusPending Status = "pending"
	StatusPosted  Status = "posted"
)

// Draft is a generated post awaiting review or already published.
type Draft struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Platform  Platform  `json:"platform"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// PostSeparator is the delimiter between posts in completion output.
const PostSeparator = "\n\n"

// SplitPosts splits completion text into individual posts on blank
// lines. Segments are not trimmed and empty segments are preserved, so
// strings.Join(SplitPosts(text), PostSeparator) == text always holds.
func SplitPosts(text string) []string {
	return strings.Split(text, PostSeparator)
}

// ClassifyPlatform assigns a platform by content length: twitter for
// anything that fits in a tweet, linkedin otherwise. Length is counted
// in runes so multibyte text is not penalized.
func ClassifyPlatform(content string) Platform {
	if utf8.RuneCountInString(content) <= TwitterMaxChars {
		return PlatformTwitter
	}
	return PlatformLinkedIn
}

// GroupedPost is a draft entry in the grouped review view.
type GroupedPost struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// GroupPending buckets drafts by weekday name and then by platform.
// Drafts with a zero timestamp bucket under now's weekday, so callers
// should pass time.Now() unless they need a deterministic fallback.
func GroupPending(posts []Draft, now time.Time) map[string]map[string][]GroupedPost {
	grouped := make(map[string]map[string][]GroupedPost)

	for _, d := range posts {
		ts := d.Timestamp
		if ts.IsZero() {
			ts = now
		}
		day := ts.Weekday().String()
		platform := string(d.Platform)

		if grouped[day] == nil {
			grouped[day] = make(map[string][]GroupedPost)
		}
		grouped[day][platform] = append(grouped[day][platform], GroupedPost{
			ID:      d.ID,
			Content: d.Content,
		})
	}

	return grouped
}
