package playground

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The playground is a same-origin developer tool with no cookies
	// or auth to protect; any origin may open the stream.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleStream upgrades to a WebSocket and, for each inbound text
// message, tokenizes/parses it with a fresh Environment and replies
// with the same JSON shape /api/v1/parse returns — a keystroke-driven
// variant of the same operation, not a second code path.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	logger := s.logger.With(zap.String("connection_id", connID))
	logger.Info("stream opened")
	defer logger.Info("stream closed")

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		if len(data) > s.maxBytes {
			conn.WriteJSON(parseErrorResponse{Message: "source exceeds max_source_bytes", Offset: -1})
			continue
		}

		resp, _ := runParse(string(data))
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}
