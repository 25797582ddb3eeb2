package s3_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"salon/infras/s3"
)

func TestObjectName(t *testing.T) {
	name := s3.ObjectName("My Receipt.PDF")

	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, "Receipt")
	assert.NotEqual(t, name, s3.ObjectName("My Receipt.PDF"))
}

func TestPublicURLRoundTrip(t *testing.T) {
	url := s3.PublicURL("https://cdn.example.com/", "receipts/abc.png")

	assert.Equal(t, "https://cdn.example.com/receipts/abc.png", url)
	assert.Equal(t, "receipts/abc.png", s3.ObjectKeyFromURL("https://cdn.example.com", url))
}

func TestObjectKeyFromForeignURL(t *testing.T) {
	assert.Empty(t, s3.ObjectKeyFromURL("https://cdn.example.com", "https://elsewhere.com/receipts/abc.png"))
	assert.Empty(t, s3.ObjectKeyFromURL("", "/uploads/abc.png"))
}
