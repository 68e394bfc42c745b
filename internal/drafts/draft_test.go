package drafts

import (
	"strings"
	"testing"
	"time"
)

func TestSplitPosts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "three posts",
			text: "first post\n\nsecond post\n\nthird post",
			want: []string{"first post", "second post", "third post"},
		},
		{
			name: "single post",
			text: "just one post",
			want: []string{"just one post"},
		},
		{
			name: "empty text yields one empty post",
			text: "",
			want: []string{""},
		},
		{
			name: "triple newline leaves a stray newline",
			text: "a\n\n\nb",
			want: []string{"a", "\nb"},
		},
		{
			name: "leading separator yields empty first segment",
			text: "\n\nfirst",
			want: []string{"", "first"},
		},
		{
			name: "single newlines are not separators",
			text: "line one\nline two",
			want: []string{"line one\nline two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitPosts(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d posts, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("post %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitPostsRoundTrip(t *testing.T) {
	text := "alpha\n\n\n\nbeta\n\ngamma\n"
	if got := strings.Join(SplitPosts(text), PostSeparator); got != text {
		t.Errorf("round trip changed text: %q != %q", got, text)
	}
}

func TestClassifyPlatform(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Platform
	}{
		{"short text", "hello world", PlatformTwitter},
		{"empty text", "", PlatformTwitter},
		{"exactly 280", strings.Repeat("x", 280), PlatformTwitter},
		{"281 chars", strings.Repeat("x", 281), PlatformLinkedIn},
		{"280 multibyte runes", strings.Repeat("é", 280), PlatformTwitter},
		{"281 multibyte runes", strings.Repeat("é", 281), PlatformLinkedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPlatform(tt.content); got != tt.want {
				t.Errorf("ClassifyPlatform() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupPending(t *testing.T) {
	// 2026-01-05 is a Monday, 2026-01-06 a Tuesday.
	monday := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC)

	posts := []Draft{
		{ID: "a", Content: "tweet one", Platform: PlatformTwitter, Timestamp: monday},
		{ID: "b", Content: "tweet two", Platform: PlatformTwitter, Timestamp: monday},
		{ID: "c", Content: "article", Platform: PlatformLinkedIn, Timestamp: monday},
		{ID: "d", Content: "tweet three", Platform: PlatformTwitter, Timestamp: tuesday},
	}

	grouped := GroupPending(posts, monday)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(grouped))
	}
	mondayTweets := grouped["Monday"]["twitter"]
	if len(mondayTweets) != 2 {
		t.Fatalf("expected 2 Monday tweets, got %d", len(mondayTweets))
	}
	if mondayTweets[0].ID != "a" || mondayTweets[1].ID != "b" {
		t.Errorf("Monday tweets out of order: %+v", mondayTweets)
	}
	if got := grouped["Monday"]["linkedin"][0].Content; got != "article" {
		t.Errorf("Monday linkedin content = %q", got)
	}
	if len(grouped["Tuesday"]["twitter"]) != 1 {
		t.Errorf("expected 1 Tuesday tweet, got %d", len(grouped["Tuesday"]["twitter"]))
	}
}

func TestGroupPendingZeroTimestampUsesNow(t *testing.T) {
	// 2026-01-09 is a Friday.
	friday := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)

	grouped := GroupPending([]Draft{
		{ID: "a", Content: "undated", Platform: PlatformTwitter},
	}, friday)

	if len(grouped["Friday"]["twitter"]) != 1 {
		t.Fatalf("expected undated draft under Friday, got %+v", grouped)
	}
}

func TestGroupPendingEmpty(t *testing.T) {
	grouped := GroupPending(nil, time.Now())
	if len(grouped) != 0 {
		t.Errorf("expected empty map, got %+v", grouped)
	}
}
