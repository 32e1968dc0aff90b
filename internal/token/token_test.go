package token_test

import (
	"testing"
	"time"

	"github.com/cinestream/backend/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret-for-token-codec"

func newCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec(testSecret, "HS256", time.Hour)
	require.NoError(t, err)
	return codec
}

func TestNewCodec(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		algorithm string
		ttl       time.Duration
		wantErr   bool
	}{
		{name: "valid HS256", secret: testSecret, algorithm: "HS256", ttl: time.Hour},
		{name: "valid HS512", secret: testSecret, algorithm: "HS512", ttl: time.Hour},
		{name: "empty secret", secret: "", algorithm: "HS256", ttl: time.Hour, wantErr: true},
		{name: "unknown algorithm", secret: testSecret, algorithm: "HS9000", ttl: time.Hour, wantErr: true},
		{name: "non-HMAC algorithm", secret: testSecret, algorithm: "RS256", ttl: time.Hour, wantErr: true},
		{name: "zero ttl", secret: testSecret, algorithm: "HS256", ttl: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := token.NewCodec(tt.secret, tt.algorithm, tt.ttl)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, codec)
		})
	}
}

func TestCodec_EncodeDecode_RoundTrip(t *testing.T) {
	codec := newCodec(t)

	tokenString, err := codec.Encode(map[string]any{"user_id": 42, "content_id": 7}, 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := codec.Decode(tokenString)
	require.NoError(t, err)

	assert.EqualValues(t, 42, claims["user_id"])
	assert.EqualValues(t, 7, claims["content_id"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "exp claim must be present")
	assert.InDelta(t, time.Now().Add(30*time.Minute).Unix(), int64(exp), 5)
}

func TestCodec_Encode_DefaultTTL(t *testing.T) {
	codec := newCodec(t)

	tokenString, err := codec.Encode(map[string]any{"user_id": 1}, 0)
	require.NoError(t, err)

	claims, err := codec.Decode(tokenString)
	require.NoError(t, err)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(codec.DefaultTTL()).Unix(), int64(exp), 5)
}

func TestCodec_EncodeSubject(t *testing.T) {
	codec := newCodec(t)

	tokenString, err := codec.EncodeSubject("123", time.Minute)
	require.NoError(t, err)

	claims, err := codec.Decode(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "123", claims["sub"])
}

func TestCodec_Decode_Expired(t *testing.T) {
	codec := newCodec(t)

	// Negative ttl puts exp in the past
	tokenString, err := codec.Encode(map[string]any{"user_id": 1}, -time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	codec := newCodec(t)
	other, err := token.NewCodec("a-completely-different-secret", "HS256", time.Hour)
	require.NoError(t, err)

	tokenString, err := other.Encode(map[string]any{"user_id": 1}, time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Decode_AlgorithmMismatch(t *testing.T) {
	codec := newCodec(t)
	hs512, err := token.NewCodec(testSecret, "HS512", time.Hour)
	require.NoError(t, err)

	// Same secret, different algorithm: must be rejected
	tokenString, err := hs512.Encode(map[string]any{"user_id": 1}, time.Minute)
	require.NoError(t, err)

	_, err = codec.Decode(tokenString)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestCodec_Decode_Malformed(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "notavalidjwt"},
		{name: "garbage segments", token: "aaa.bbb.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			assert.ErrorIs(t, err, token.ErrInvalidToken)
		})
	}
}
