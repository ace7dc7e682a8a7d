package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/dmitrijs2005/safekey/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_GetAbsent(t *testing.T) {
	env := newTestEnv(t)
	u := env.mustUser(t, "Ada")

	_, err := env.settings.Get(context.Background(), u.ID)
	require.Error(t, err)
	assert.True(t, common.IsNotFoundKind(err, common.KindSecuritySettings))
}

func TestSettings_CreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	created, err := env.settings.Create(ctx, u.ID, SettingsFields{
		OtpEnabled:          true,
		PreferredOtpChannel: models.OtpChannelSMS,
		BackupPhone:         strPtr("+371 20000000"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := env.settings.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.OtpEnabled)
	assert.False(t, got.BiometricEnabled)
	assert.Equal(t, models.OtpChannelSMS, got.PreferredOtpChannel)
	assert.Nil(t, got.BackupEmail)
	require.NotNil(t, got.BackupPhone)
	assert.Equal(t, "+371 20000000", *got.BackupPhone)
}

func TestSettings_SecondProfileRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	_, err := env.settings.Create(ctx, u.ID, SettingsFields{})
	require.NoError(t, err)

	_, err = env.settings.Create(ctx, u.ID, SettingsFields{BiometricEnabled: true})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, 1, env.count(t, "security_settings"))
}

func TestSettings_CreateErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	_, err := env.settings.Create(ctx, "ghost", SettingsFields{})
	assert.True(t, common.IsNotFoundKind(err, common.KindUser))

	_, err = env.settings.Create(ctx, u.ID, SettingsFields{PreferredOtpChannel: "Pigeon"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Equal(t, 0, env.count(t, "security_settings"))
}

func TestSettings_UpdateOverwrites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	st, err := env.settings.Create(ctx, u.ID, SettingsFields{
		OtpEnabled:          true,
		PreferredOtpChannel: models.OtpChannelSMS,
		BackupPhone:         strPtr("+371 20000000"),
	})
	require.NoError(t, err)

	updated, err := env.settings.Update(ctx, st.ID, SettingsFields{
		BiometricEnabled:    true,
		PreferredOtpChannel: models.OtpChannelEmail,
		BackupEmail:         strPtr("ada@example.org"),
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, updated.UserID)
	assert.True(t, updated.BiometricEnabled)
	assert.False(t, updated.OtpEnabled)
	assert.Equal(t, models.OtpChannelEmail, updated.PreferredOtpChannel)
	assert.Nil(t, updated.BackupPhone)
	require.NotNil(t, updated.BackupEmail)
	assert.Equal(t, "ada@example.org", *updated.BackupEmail)

	got, err := env.settings.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestSettings_UpdateErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.settings.Update(ctx, "ghost", SettingsFields{})
	assert.True(t, common.IsNotFoundKind(err, common.KindSecuritySettings))

	_, err = env.settings.Update(ctx, "ghost", SettingsFields{PreferredOtpChannel: "Fax"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}
