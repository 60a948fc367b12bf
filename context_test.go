package scopekit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextUserID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", GetUserID(ctx))

	ctx = WithUserID(ctx, "u-1")
	assert.Equal(t, "u-1", GetUserID(ctx))
	assert.Equal(t, "u-1", MustGetUserID(ctx))
}

func TestMustGetUserIDPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustGetUserID(context.Background())
	})
}

func TestContextActorIDFallsBackToUserID(t *testing.T) {
	ctx := WithUserID(context.Background(), "u-1")
	assert.Equal(t, "u-1", GetActorID(ctx), "actor defaults to the acting user")

	ctx = WithActorID(ctx, "u-admin")
	assert.Equal(t, "u-admin", GetActorID(ctx))
	assert.Equal(t, "u-1", GetUserID(ctx), "setting the actor does not change the subject")
}

func TestContextRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestContextChecker(t *testing.T) {
	f := newTreeFixture()
	checker := f.service.GetChecker(f.admin)

	ctx := WithChecker(context.Background(), checker)
	assert.Same(t, checker, GetChecker(ctx))
	assert.Same(t, checker, FromContext(ctx))
	assert.Nil(t, GetChecker(context.Background()))
}

func TestGetCheckerFromContext(t *testing.T) {
	f := newTreeFixture()

	_, err := f.service.GetCheckerFromContext(context.Background())
	require.ErrorIs(t, err, ErrNoUserID)

	checker, err := f.service.GetCheckerFromContext(WithUserID(context.Background(), f.admin))
	require.NoError(t, err)
	assert.Equal(t, f.admin, checker.UserID())
}
