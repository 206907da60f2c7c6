package utils

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("guest:abc", map[string]interface{}{"role": "guest"}, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	sub, err := SubjectFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "guest:abc", sub)
	assert.Equal(t, "guest", claims["role"])

	ttl := TokenTTL(claims)
	assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour, ttl)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("guest:abc", nil, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestJWTEmptySecret(t *testing.T) {
	_, err := GenerateJWT("guest:abc", nil, "", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSubjectFromClaimsEmpty(t *testing.T) {
	_, err := SubjectFromClaims(map[string]interface{}{"sub": "  "})
	assert.ErrorIs(t, err, ErrInvalidTokenPayload)
}

func TestPrincipalType(t *testing.T) {
	assert.Equal(t, "guest", PrincipalType(GenerateGuestID()))
	assert.Equal(t, "user", PrincipalType("user:42"))
}

func TestGenerateGuestID(t *testing.T) {
	id := GenerateGuestID()
	assert.True(t, strings.HasPrefix(id, GuestPrefix))
	assert.Len(t, strings.TrimPrefix(id, GuestPrefix), 16)
	assert.NotEqual(t, id, GenerateGuestID())
}

func TestGuestTokenLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _ := CanIssueGuestToken(ctx, rdb, "10.0.0.1", 2)
		require.True(t, ok)
		MarkGuestTokenIssued(ctx, rdb, "10.0.0.1")
	}
	ok, msg := CanIssueGuestToken(ctx, rdb, "10.0.0.1", 2)
	assert.False(t, ok)
	assert.Equal(t, "at most 2 guest tokens per hour", msg)

	ok, _ = CanIssueGuestToken(ctx, rdb, "10.0.0.2", 2)
	assert.True(t, ok)

	mr.FastForward(time.Hour + time.Second)
	ok, _ = CanIssueGuestToken(ctx, rdb, "10.0.0.1", 2)
	assert.True(t, ok)

	// без Redis лимит не применяется
	ok, _ = CanIssueGuestToken(ctx, nil, "10.0.0.1", 2)
	assert.True(t, ok)
}

func TestBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	ctx := context.Background()

	assert.False(t, IsTokenBlacklisted(ctx, rdb, "tok"))
	require.NoError(t, BlacklistToken(ctx, rdb, "tok", time.Minute))
	assert.True(t, IsTokenBlacklisted(ctx, rdb, "tok"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, IsTokenBlacklisted(ctx, rdb, "tok"))

	// истекший токен не пишется
	require.NoError(t, BlacklistToken(ctx, rdb, "old", 0))
	assert.False(t, mr.Exists("blacklist:old"))
	assert.False(t, IsTokenBlacklisted(ctx, nil, "tok"))
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault(" 7 ", 1))
	assert.Equal(t, 1, ParseIntDefault("x", 1))
	assert.Equal(t, 1, ParseIntDefault("", 1))

	assert.Equal(t, []string{"a", "b", "c"}, SplitCSV("a, b,,c"))
	assert.Nil(t, SplitCSV(" , "))

	assert.Equal(t, "Casa Blanca", TitleCase("casa BLANCA"))
	assert.Equal(t, "Paris", TitleCase("  paris "))
	assert.Equal(t, "", TitleCase(""))
}

func TestToday(t *testing.T) {
	loc := LoadLocation("Not/AZone")
	_, offset := time.Now().In(loc).Zone()
	assert.Equal(t, 3600, offset)

	d := Today(time.UTC)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), d.String())
}

func TestSMTPEnabled(t *testing.T) {
	assert.False(t, SMTPSettings{}.Enabled())
	assert.True(t, SMTPSettings{Host: "smtp.example.com", User: "bot@example.com"}.Enabled())
}
