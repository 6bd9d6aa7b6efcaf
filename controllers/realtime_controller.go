package controllers

import (
	"net/http"

	"github.com/AthemiS13/nutrix/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// hub is shared by the websocket endpoint and the meal write path.
var hub *services.ProgressHub

func InitRealtime(h *services.ProgressHub) {
	hub = h
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// GET /ws/progress pushes recomputed daily totals after meal writes.
func ProgressWS(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
		return
	}

	client := &services.WSClient{UserID: userID, Conn: conn}
	hub.Register(client)

	// Reader loop only exists to detect the close.
	go func() {
		defer hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
