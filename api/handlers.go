package api

import (
	"net/http"

	"github.com/Yxf-20160325/gomoku/ws"
	"github.com/gin-gonic/gin"
)

type roomListResponse struct {
	Rooms []ws.RoomSummary `json:"rooms"`
}

// ListRooms returns the rooms still waiting for an opponent.
func (s *Server) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, roomListResponse{
		Rooms: s.wsManager.ListJoinable(),
	})
}
