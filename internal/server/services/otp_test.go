package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/safekey/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubCodes(t *testing.T, codes ...string) {
	t.Helper()
	orig := generateCode
	t.Cleanup(func() { generateCode = orig })

	i := 0
	generateCode = func() (string, error) {
		c := codes[i%len(codes)]
		i++
		return c, nil
	}
}

func TestOtp_GenerateFormat(t *testing.T) {
	env := newTestEnv(t)
	u := env.mustUser(t, "Ada")

	digits := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 20; i++ {
		code, err := env.otp.Generate(context.Background(), u.ID)
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
	}
	assert.Equal(t, 20, env.count(t, "otp_challenges"))
}

func TestOtp_GenerateUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.otp.Generate(context.Background(), "ghost")
	assert.True(t, common.IsNotFoundKind(err, common.KindUser))
	assert.Equal(t, 0, env.count(t, "otp_challenges"))
}

func TestOtp_VerifyWithinWindowIsReplayable(t *testing.T) {
	stubCodes(t, "048213")
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	code, err := env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "048213", code)

	env.clock.Advance(4 * time.Minute)

	c, err := env.otp.Verify(ctx, u.ID, "048213")
	require.NoError(t, err)
	assert.True(t, c.Verified)
	assert.Equal(t, epoch, c.IssuedAt)

	c, err = env.otp.Verify(ctx, u.ID, "048213")
	require.NoError(t, err)
	assert.True(t, c.Verified)

	stored, err := env.otp.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Verified)
}

func TestOtp_VerifyExpired(t *testing.T) {
	stubCodes(t, "048213")
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	_, err := env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)

	env.clock.Advance(6 * time.Minute)

	_, err = env.otp.Verify(ctx, u.ID, "048213")
	assert.ErrorIs(t, err, common.ErrChallengeExpired)

	stored, err := env.otp.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].Verified)
}

func TestOtp_WindowBoundary(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{"exactly validity", 5 * time.Minute, nil},
		{"one second past", 5*time.Minute + time.Second, common.ErrChallengeExpired},
		{"one microsecond past", 5*time.Minute + time.Microsecond, common.ErrChallengeExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubCodes(t, "123456")
			env := newTestEnv(t)
			ctx := context.Background()
			u := env.mustUser(t, "Ada")

			_, err := env.otp.Generate(ctx, u.ID)
			require.NoError(t, err)

			env.clock.Advance(tt.elapsed)
			_, err = env.otp.Verify(ctx, u.ID, "123456")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOtp_OnlyLatestChallengeCounts(t *testing.T) {
	stubCodes(t, "111111", "222222")
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	_, err := env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)
	env.clock.Advance(time.Second)
	_, err = env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)

	_, err = env.otp.Verify(ctx, u.ID, "111111")
	assert.ErrorIs(t, err, common.ErrInvalidCode)

	c, err := env.otp.Verify(ctx, u.ID, "222222")
	require.NoError(t, err)
	assert.Equal(t, "222222", c.Code)
}

func TestOtp_LatestWinsOnSameInstant(t *testing.T) {
	stubCodes(t, "111111", "222222")
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	first, err := env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)
	second, err := env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)

	_, err = env.otp.Verify(ctx, u.ID, first)
	assert.ErrorIs(t, err, common.ErrInvalidCode)

	c, err := env.otp.Verify(ctx, u.ID, second)
	require.NoError(t, err)
	assert.Equal(t, "222222", c.Code)

	all, err := env.otp.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, c.ID, all[0].ID)
	assert.True(t, all[0].Verified)
	assert.False(t, all[1].Verified)
}

func TestOtp_VerifyWithoutChallenge(t *testing.T) {
	env := newTestEnv(t)
	u := env.mustUser(t, "Ada")

	_, err := env.otp.Verify(context.Background(), u.ID, "000000")
	assert.ErrorIs(t, err, common.ErrNoChallenge)

	_, err = env.otp.Verify(context.Background(), "ghost", "000000")
	assert.ErrorIs(t, err, common.ErrNoChallenge)
}

func TestOtp_ChallengesAreScopedPerUser(t *testing.T) {
	stubCodes(t, "111111", "222222")
	env := newTestEnv(t)
	ctx := context.Background()
	ada := env.mustUser(t, "Ada")
	alan := env.mustUser(t, "Alan")

	_, err := env.otp.Generate(ctx, ada.ID)
	require.NoError(t, err)
	_, err = env.otp.Generate(ctx, alan.ID)
	require.NoError(t, err)

	_, err = env.otp.Verify(ctx, ada.ID, "111111")
	assert.NoError(t, err)
	_, err = env.otp.Verify(ctx, alan.ID, "111111")
	assert.ErrorIs(t, err, common.ErrInvalidCode)

	all, err := env.otp.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOtp_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := env.mustUser(t, "Ada")

	_, err := env.otp.Generate(ctx, u.ID)
	require.NoError(t, err)
	all, err := env.otp.ListForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, env.otp.Delete(ctx, all[0].ID))
	err = env.otp.Delete(ctx, all[0].ID)
	assert.True(t, common.IsNotFoundKind(err, common.KindOtpChallenge))

	_, err = env.otp.Verify(ctx, u.ID, all[0].Code)
	assert.ErrorIs(t, err, common.ErrNoChallenge)
}
