package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/simulate/stream", NewStreamHandler().StreamSimulation)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dialStream(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/simulate/stream"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestStreamSimulation_StepsThenSummary(t *testing.T) {
	conn := dialStream(t, newStreamServer(t))

	require.NoError(t, conn.WriteJSON(simulateBody(7)))

	steps := 0
	for {
		var msg streamMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == "step" {
			require.NotNil(t, msg.Step)
			assert.Equal(t, steps*60, msg.Step.TimeMin)
			steps++
			continue
		}
		require.Equal(t, "summary", msg.Type)
		require.NotNil(t, msg.Summary)
		assert.Equal(t, steps, msg.Summary.Steps)
		assert.Equal(t, int64(7), msg.Summary.Seed)
		break
	}
	assert.Equal(t, 24, steps)

	// After the summary the server closes the socket cleanly.
	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, websocket.CloseNormalClosure, closeErr.Code)
}

func TestStreamSimulation_InvalidConfig(t *testing.T) {
	conn := dialStream(t, newStreamServer(t))

	body := simulateBody(7)
	body["config"].(map[string]any)["strategy"] = map[string]any{"name": "YOLO_PRIORITY"}
	require.NoError(t, conn.WriteJSON(body))

	var msg streamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "strategy")
	assert.Nil(t, msg.Step)
	assert.Nil(t, msg.Summary)
}

func TestStreamSimulation_MalformedFirstMessage(t *testing.T) {
	conn := dialStream(t, newStreamServer(t))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	var msg streamMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Message, "invalid request")
}
