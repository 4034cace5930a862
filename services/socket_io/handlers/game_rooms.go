package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"

	"courtside/models"
	redis_models "courtside/models/redis"
	"courtside/services/redis"
	socketio_types "courtside/services/socket_io/types"
	"courtside/services/state"
)

// HandleJoinGameRoom subscribes a client to the room for a game so it
// receives roster_update events. Watching a game does not require being
// on its roster.
func HandleJoinGameRoom(appState *state.AppState, client *socket.Socket, username string) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) == 0 {
			client.Emit("error", gin.H{"error": "Invalid game ID"})
			return
		}
		gameID, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid game ID"})
			return
		}

		if !appState.HasGame(gameID) {
			fmt.Println("Game does not exist:", gameID)
			client.Emit("error", gin.H{"error": "Game does not exist"})
			return
		}

		client.Join(socket.Room(gameID))
		fmt.Println("Client joined game room:", gameID)
		client.Emit("game_room_joined", gin.H{"game_id": gameID})
	}
}

// HandleLeaveGameRoom unsubscribes a client from a game room
func HandleLeaveGameRoom(client *socket.Socket, username string) func(args ...interface{}) {
	return func(args ...interface{}) {
		if len(args) == 0 {
			client.Emit("error", gin.H{"error": "Invalid game ID"})
			return
		}
		gameID, ok := args[0].(string)
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid game ID"})
			return
		}

		client.Leave(socket.Room(gameID))
		client.Emit("game_room_left", gin.H{"game_id": gameID})
	}
}

// HandleDisconnecting marks the player offline and drops the connection
// from the map
func HandleDisconnecting(rc *redis.RedisClient, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		if rc != nil {
			err := rc.SavePlayerPresence(&redis_models.PlayerPresence{
				Username: username,
				Status:   redis_models.StatusOffline,
				LastPing: time.Now().Unix(),
			})
			if err != nil {
				fmt.Println("Error saving presence:", err)
			}
		}
		sio.RemoveConnection(username)
		fmt.Println("An individual just disconnected:", username)
	}
}

// BroadcastRosterUpdate pushes the new roster/waitlist counts to every
// client watching the game. Safe to call with a nil server (tests, or
// the socket layer disabled).
func BroadcastRosterUpdate(sio *socketio_types.SocketServer, g *models.Game) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	sio.Sio_server.To(socket.Room(g.ID)).Emit("roster_update", gin.H{
		"game_id":       g.ID,
		"player_count":  len(g.Roster),
		"waitlist_size": len(g.Waitlist),
		"spots_left":    g.SpotsLeft(),
		"is_full":       g.IsFull(),
	})
}

// NotifyPromotion tells a player directly that a seat opened up and they
// moved from the waitlist onto the roster. Silent when the player has no
// live connection.
func NotifyPromotion(sio *socketio_types.SocketServer, username string, g *models.Game) {
	if sio == nil || sio.Sio_server == nil {
		return
	}
	client, ok := sio.GetConnection(username)
	if !ok {
		return
	}
	client.Emit("roster_promoted", gin.H{
		"game_id": g.ID,
		"title":   g.Title,
	})
}
