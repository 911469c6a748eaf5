package redis

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUninitializedClient(t *testing.T) {
	require.Nil(t, GetClient())
	assert.False(t, Enabled())

	assert.ErrorIs(t, HealthCheck(), errNotInitialized)
	assert.ErrorIs(t, SetUserPresence(1, "alice", StatusOnline), errNotInitialized)
	assert.ErrorIs(t, IncrementUnread(1, 2), errNotInitialized)
	assert.ErrorIs(t, AddOfflineNotification(1, &Notification{Type: "chat"}), errNotInitialized)
	assert.ErrorIs(t, InvalidateConversations(1, 2), errNotInitialized)

	_, err := GetUnreadCounts(1)
	assert.ErrorIs(t, err, errNotInitialized)
	_, err = GetCachedConversations(1, "p1:l20")
	assert.ErrorIs(t, err, errNotInitialized)
	assert.NoError(t, Close())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "sim:unread:42", userKey(unreadPrefix, 42))
	assert.Equal(t, "p1:l20", ConversationQueryField(1, 20, nil))
	typ := 2
	assert.Equal(t, "p3:l10:t2", ConversationQueryField(3, 10, &typ))

	now := time.Unix(120, 0)
	assert.Equal(t, "sim:ratelimit:10.0.0.1:2", rateLimitKey("10.0.0.1", time.Minute, now))
	assert.Equal(t, rateLimitKey("ip", time.Minute, now), rateLimitKey("ip", time.Minute, now.Add(59*time.Second)))
	assert.NotEqual(t, rateLimitKey("ip", time.Minute, now), rateLimitKey("ip", time.Minute, now.Add(time.Minute)))
}

func TestParseUnreadCounts(t *testing.T) {
	counts := parseUnreadCounts(map[string]string{
		"2":  "3",
		"5":  "0",
		"x":  "1",
		"7":  "-1",
		"9":  "oops",
		"11": "12",
	})
	assert.Equal(t, map[uint]int64{2: 3, 11: 12}, counts)
}

func TestDecodeNotifications_ReturnsOldestFirst(t *testing.T) {
	newer, _ := json.Marshal(Notification{Type: "chat", From: 2})
	older, _ := json.Marshal(Notification{Type: "comment_reply", From: 3})

	out := decodeNotifications([]string{string(newer), "not json", string(older)})
	require.Len(t, out, 2)
	assert.Equal(t, "comment_reply", out[0].Type)
	assert.Equal(t, uint(2), out[1].From)
}

func TestRateLimiter_PassesThroughWithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(1, time.Minute))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
