package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/internal/engine"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/api"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/logger"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и Service. Читает запросы на
// генерацию, отвечает снимками уровней.
type Client struct {
	Engine *engine.Service
	Conn   *websocket.Conn
	Send   chan interface{}
	ID     string
}

func NewClient(eng *engine.Service, conn *websocket.Conn) *Client {
	return &Client{
		Engine: eng,
		Conn:   conn,
		Send:   make(chan interface{}, 16),
		ID:     utils.GenerateID(),
	}
}

// readPump читает запросы от клиента
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		logger.Log.WithField("client_id", c.ID).Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	logger.Log.WithField("client_id", c.ID).Info("Client connected")

	for {
		var req api.GenerateRequest
		err := c.Conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}

		if err := req.Validate(); err != nil {
			c.Send <- api.NewErrorResponse(err.Error())
			continue
		}

		id := domain.NewDLevel(req.Branch, req.Depth)
		l, err := c.Engine.LevelForSeed(id, req.Seed)
		if err != nil {
			c.Send <- api.NewErrorResponse(err.Error())
			continue
		}

		logger.Log.WithFields(logrus.Fields{
			"client_id": c.ID,
			"level":     id.String(),
		}).Debug("Level requested")

		c.Send <- engine.BuildSnapshot(l)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
