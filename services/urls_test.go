package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildBlogPostURL(t *testing.T) {
	assert.Equal(t, "https://hitekgroup.vn/blog/new-office", BuildBlogPostURL("https://hitekgroup.vn", "new-office"))
	assert.Equal(t, "https://hitekgroup.vn/blog/new-office", BuildBlogPostURL("https://hitekgroup.vn/", "new-office"))
	assert.Equal(t, "", BuildBlogPostURL("", "new-office"))
	assert.Equal(t, "", BuildBlogPostURL("https://hitekgroup.vn", ""))
}

func TestBuildProjectURL(t *testing.T) {
	assert.Equal(t, "https://hitekgroup.vn/projects/12", BuildProjectURL("https://hitekgroup.vn", 12))
	assert.Equal(t, "", BuildProjectURL("", 12))
	assert.Equal(t, "", BuildProjectURL("https://hitekgroup.vn", 0))
}

func TestGetPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://hitekgroup.vn", GetPublicBaseURL(map[string]string{"PUBLIC_BASE_URL": "https://hitekgroup.vn/"}))
	assert.Equal(t, "", GetPublicBaseURL(nil))
}
