package server

import (
	"frostwild-server/internal/engine"
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/logger"
	"frostwild-server/pkg/utils"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между рендером (WebSocket) и GameService.
// Снимки идут наружу, снимки клавиш и дискретные действия - внутрь.
type Client struct {
	Game  *engine.GameService
	Conn  *websocket.Conn
	Token string

	updates <-chan api.Snapshot
	log     *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		log:  logger.For("ws"),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		if c.updates != nil {
			c.Game.Hub.Release(c.Token, c.updates)
			c.log.WithField("token", c.Token).Info("Client disconnected")
		}
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE: первое сообщение несет токен рендера
	var hello api.ClientCommand
	if err := c.Conn.ReadJSON(&hello); err != nil {
		c.log.WithError(err).Warn("Handshake failed")
		return
	}
	c.Token = hello.Token
	if c.Token == "" {
		c.Token = utils.GenerateID()
	}

	// 2. ПОДПИСКА НА СНИМКИ. Первый отправляем сразу, не дожидаясь тика.
	// Канал закроет Release при отключении (или повторный вход с тем же токеном).
	c.updates = c.Game.Hub.Register(c.Token)
	c.Game.Hub.SendTo(c.Token, c.Game.LastSnapshot())
	go c.writePump(c.updates)

	c.log.WithField("token", c.Token).Info("Client connected")
	if err := c.Game.ProcessCommand(api.ClientCommand{Action: "INIT", Token: c.Token}); err != nil {
		c.log.WithError(err).Warn("INIT rejected")
	}

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS read error")
			}
			break
		}
		cmd.Token = c.Token
		if err := c.Game.ProcessCommand(cmd); err != nil {
			c.log.WithFields(logrus.Fields{"action": cmd.Action, "error": err}).Debug("Command rejected")
		}
	}
}

// writePump отправляет снимки клиенту + Ping
func (c *Client) writePump(updates <-chan api.Snapshot) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-updates:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
