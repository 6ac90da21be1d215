package websocket

import (
	"log"
	"sync"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one connected user. Grade is nil for teachers and admins,
// who receive every announcement.
type Client struct {
	UserID uuid.UUID
	Grade  *int
	Conn   *websocket.Conn
}

var clients = make(map[uuid.UUID]*Client)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Announcement)

// RunHub pushes fresh announcements to every connected user in the
// announcement's target grade.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if existing, ok := clients[client.UserID]; ok && existing.Conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case announcement := <-Broadcast:
			clientsMu.RLock()
			var stale []*Client
			for _, client := range clients {
				if !wantsAnnouncement(client, announcement) {
					continue
				}
				if err := client.Conn.WriteJSON(announcement); err != nil {
					log.Printf("Error sending announcement to client %s: %v", client.UserID, err)
					client.Conn.Close()
					stale = append(stale, client)
				}
			}
			clientsMu.RUnlock()

			if len(stale) > 0 {
				clientsMu.Lock()
				for _, client := range stale {
					if existing, ok := clients[client.UserID]; ok && existing.Conn == client.Conn {
						delete(clients, client.UserID)
					}
				}
				clientsMu.Unlock()
			}
		}
	}
}

func wantsAnnouncement(client *Client, announcement *models.Announcement) bool {
	if announcement.TargetGrade == nil || client.Grade == nil {
		return true
	}
	return *client.Grade == *announcement.TargetGrade
}
