package auth

import (
	"testing"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour)
	id := bson.NewObjectID()

	token, err := manager.Issue(id, entity.PrincipalVendor)
	assert.NoError(t, err)

	gotID, gotModel, err := manager.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, entity.PrincipalVendor, gotModel)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Issue(bson.NewObjectID(), entity.PrincipalUser)
	assert.NoError(t, err)

	_, _, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestTokenExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)
	token, err := manager.Issue(bson.NewObjectID(), entity.PrincipalUser)
	assert.NoError(t, err)

	_, _, err = manager.Verify(token)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestTokenGarbage(t *testing.T) {
	_, _, err := NewTokenManager("test-secret", time.Hour).Verify("not-a-token")
	assert.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}
