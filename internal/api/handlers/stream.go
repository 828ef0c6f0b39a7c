package handlers

import (
	"log"
	"net/http"

	"microgrid-sim/internal/api/models"
	"microgrid-sim/internal/simulate"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamMessage is the envelope for everything sent over the socket.
type streamMessage struct {
	Type    string               `json:"type"` // "step", "summary", "error"
	Step    *simulate.StepResult `json:"step,omitempty"`
	Summary *simulate.Summary    `json:"summary,omitempty"`
	Message string               `json:"message,omitempty"`
}

// StreamHandler runs a scenario while pushing every step over a WebSocket.
type StreamHandler struct{}

func NewStreamHandler() *StreamHandler {
	return &StreamHandler{}
}

// StreamSimulation handles GET /api/v1/simulate/stream. The client sends one
// SimulateRequest as the first message; the server answers with a "step"
// message per simulated step followed by a final "summary".
func (h *StreamHandler) StreamSimulation(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	var req models.SimulateRequest
	if err := conn.ReadJSON(&req); err != nil {
		writeStreamError(conn, "invalid request: "+err.Error())
		return
	}

	cfg := req.Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		writeStreamError(conn, err.Error())
		return
	}

	eng, err := simulate.FromConfig(&cfg)
	if err != nil {
		writeStreamError(conn, err.Error())
		return
	}

	var writeErr error
	eng.OnStep(func(row simulate.StepResult) {
		if writeErr != nil {
			return
		}
		writeErr = conn.WriteJSON(streamMessage{Type: "step", Step: &row})
	})

	res, err := eng.Run()
	if err != nil {
		writeStreamError(conn, err.Error())
		return
	}
	if writeErr != nil {
		log.Printf("WebSocket write error: %v", writeErr)
		return
	}

	if err := conn.WriteJSON(streamMessage{Type: "summary", Summary: &res.Summary}); err != nil {
		log.Printf("WebSocket write error: %v", err)
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func writeStreamError(conn *websocket.Conn, msg string) {
	_ = conn.WriteJSON(streamMessage{Type: "error", Message: msg})
}
