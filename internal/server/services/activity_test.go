package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivity_Append(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	e, err := env.activity.Append(ctx, u.ID, "view", "credential:github", strPtr("from laptop"))
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, epoch, e.Timestamp)

	got, err := env.activity.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *e, got[0])
}

func TestActivity_AppendErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	_, err := env.activity.Append(ctx, "ghost", "view", "x", nil)
	assert.True(t, common.IsNotFoundKind(err, common.KindUser))

	_, err = env.activity.Append(ctx, u.ID, "", "x", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = env.activity.Append(ctx, u.ID, "view", "  ", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Equal(t, 0, env.count(t, "activity_logs"))
}

func TestActivity_OrderingAndScope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ada := env.mustUser(t, "Ada")
	alan := env.mustUser(t, "Alan")

	for _, action := range []string{"login", "view", "logout"} {
		_, err := env.activity.Append(ctx, ada.ID, action, "session", nil)
		require.NoError(t, err)
		env.clock.Advance(time.Second)
	}
	_, err := env.activity.Append(ctx, alan.ID, "login", "session", nil)
	require.NoError(t, err)

	mine, err := env.activity.ListForUser(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "login", mine[0].Action)
	assert.Equal(t, "logout", mine[2].Action)
	assert.True(t, mine[0].Timestamp.Before(mine[2].Timestamp))

	all, err := env.activity.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestActivity_DeleteAndClear(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	first, err := env.activity.Append(ctx, u.ID, "login", "session", nil)
	require.NoError(t, err)
	_, err = env.activity.Append(ctx, u.ID, "logout", "session", nil)
	require.NoError(t, err)

	require.NoError(t, env.activity.Delete(ctx, first.ID))
	err = env.activity.Delete(ctx, first.ID)
	assert.True(t, common.IsNotFoundKind(err, common.KindActivityLog))
	assert.Equal(t, 1, env.count(t, "activity_logs"))

	require.NoError(t, env.activity.Clear(ctx))
	assert.Equal(t, 0, env.count(t, "activity_logs"))
	require.NoError(t, env.activity.Clear(ctx))
}
