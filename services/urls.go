package services

import (
	"fmt"
	"strings"

	"github.com/hitekgroup/hitek-site-backend/config"
)

// GetPublicBaseURL retrieves the public site base URL from configuration.
// Returns an empty string when unset; callers treat share links as optional.
func GetPublicBaseURL(cfg map[string]string) string {
	return strings.TrimSuffix(config.GetString(cfg, "PUBLIC_BASE_URL", ""), "/")
}

// BuildBlogPostURL constructs the public URL for a blog post from the site's
// base URL and the post's slug (e.g. "https://hitekgroup.vn/blog/some-post").
func BuildBlogPostURL(baseURL, slug string) string {
	if baseURL == "" || slug == "" {
		return ""
	}
	return fmt.Sprintf("%s/blog/%s", strings.TrimSuffix(baseURL, "/"), slug)
}

// BuildProjectURL constructs the public URL for a project case study.
func BuildProjectURL(baseURL string, projectID int) string {
	if baseURL == "" || projectID <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/projects/%d", strings.TrimSuffix(baseURL, "/"), projectID)
}
