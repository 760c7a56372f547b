package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShareLink(t *testing.T) {
	db := setupTestDB(t)
	event := createTestEvent(t, db)
	svc := &ShareService{DB: db, UploadsDir: t.TempDir()}

	link, err := svc.CreateShareLink(event.ID)
	require.NoError(t, err)

	assert.Equal(t, event.ID, link.EventID)
	assert.True(t, strings.HasPrefix(link.Payload, "evt:"))
	assert.Contains(t, link.Payload, ":share:")
	assert.NotEmpty(t, link.Link)
	assert.NotEmpty(t, link.ImagePath)
	assert.False(t, link.IssuedAt.IsZero())
	assert.Regexp(t, `^[A-Z0-9]{4}-[A-Z0-9]{4}$`, link.Code)

	// every issue gets a fresh nonce
	second, err := svc.CreateShareLink(event.ID)
	require.NoError(t, err)
	assert.NotEqual(t, link.Payload, second.Payload)

	_, err = svc.CreateShareLink(9999)
	assert.ErrorIs(t, err, ErrNotFoundOrUnauthorized)
}
