package minio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/uploads/avatars/1/a.png",
		PublicURL("https://cdn.example.com/", "uploads", "/avatars/1/a.png"))
	assert.Equal(t, "http://localhost:9000/uploads/x", PublicURL("http://localhost:9000", "uploads", "x"))
}

func TestReadPolicy(t *testing.T) {
	var doc struct {
		Statement []struct {
			Effect   string
			Action   []string
			Resource []string
		}
	}
	require.NoError(t, json.Unmarshal([]byte(readPolicy("uploads", []string{"avatars/", "logos/"})), &doc))
	require.Len(t, doc.Statement, 1)
	assert.Equal(t, "Allow", doc.Statement[0].Effect)
	assert.Equal(t, []string{"s3:GetObject"}, doc.Statement[0].Action)
	assert.Equal(t, []string{"arn:aws:s3:::uploads/avatars/*", "arn:aws:s3:::uploads/logos/*"}, doc.Statement[0].Resource)
}
