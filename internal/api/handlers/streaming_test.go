package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/cinestream/backend/internal/domain"
	"github.com/cinestream/backend/internal/service"
	"github.com/cinestream/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreaming_PremiumGate(t *testing.T) {
	ts := testutil.NewTestServer(t)

	premium := testutil.NewContentBuilder().Premium().Build(t, ts.DB.DB)
	free := testutil.NewContentBuilder().Build(t, ts.DB.DB)

	viewer, token := testutil.NewUserBuilder().WithEmail("viewer@x.com").BuildAndAuthenticate(t, ts)

	streamURL := func(contentID uint) string {
		return ts.APIURL(fmt.Sprintf("/stream/%d", contentID))
	}

	t.Run("requires authentication", func(t *testing.T) {
		resp := getWithToken(t, streamURL(premium.ID), "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("premium denied without subscription", func(t *testing.T) {
		resp := getWithToken(t, streamURL(premium.ID), token)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	})

	t.Run("free content streams without subscription", func(t *testing.T) {
		resp := getWithToken(t, streamURL(free.ID), token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var grant service.PlaybackGrant
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&grant))
		assert.Contains(t, grant.PlaybackURL, "token=")
		assert.Equal(t, 3600, grant.ExpiresIn)
	})

	t.Run("unknown content", func(t *testing.T) {
		resp := getWithToken(t, streamURL(999999), token)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("premium streams once subscribed", func(t *testing.T) {
		plan := testutil.CreatePlan(t, ts.DB.DB, "Premium", 1499)
		testutil.Subscribe(t, ts.DB.DB, viewer, plan, domain.SubscriptionActive)

		resp := getWithToken(t, streamURL(premium.ID), token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var grant service.PlaybackGrant
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&grant))
		assert.Equal(t, 3600, grant.ExpiresIn)

		parsed, err := url.Parse(grant.PlaybackURL)
		require.NoError(t, err)
		claims, err := ts.Codec.Decode(parsed.Query().Get("token"))
		require.NoError(t, err)
		assert.EqualValues(t, viewer.ID, claims["user_id"])
		assert.EqualValues(t, premium.ID, claims["content_id"])
	})
}

func TestStreaming_StoredURLQueryPreserved(t *testing.T) {
	ts := testutil.NewTestServer(t)

	content := testutil.NewContentBuilder().
		WithVideoURL("https://cdn.example.net/vod/42/master.m3u8?q=1").
		Build(t, ts.DB.DB)

	_, token := testutil.NewUserBuilder().WithEmail("watcher@x.com").BuildAndAuthenticate(t, ts)

	resp := getWithToken(t, ts.APIURL(fmt.Sprintf("/stream/%d", content.ID)), token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var grant service.PlaybackGrant
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grant))

	parsed, err := url.Parse(grant.PlaybackURL)
	require.NoError(t, err)
	query := parsed.Query()
	assert.Equal(t, "1", query.Get("q"))
	assert.NotEmpty(t, query.Get("token"))
}
