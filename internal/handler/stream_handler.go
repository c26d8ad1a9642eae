package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pitchlab/mocap-backend-go/internal/models"
	"github.com/pitchlab/mocap-backend-go/internal/service"
	"github.com/pitchlab/mocap-backend-go/pkg/response"
)

// StreamHandler plays the active dataset back over a websocket so the 3D
// viewer can animate without polling. The dataset pointer is snapshotted
// at upgrade time; a concurrent re-ingest does not disturb a running
// stream.
type StreamHandler struct {
	store    *service.DatasetStore
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(store *service.DatasetStore) *StreamHandler {
	return &StreamHandler{
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 8192,
			// The dashboard is served from another origin in development.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// streamFrame is one playback message.
type streamFrame struct {
	Frame models.FrameRecord `json:"frame"`
	Index int                `json:"index"`
	Total int                `json:"total"`
	Done  bool               `json:"done"`
}

// Stream handles GET /api/v1/motion/stream. Query parameter "fps" picks
// the playback rate (default 60, capped at the 300 Hz capture rate);
// frames are decimated accordingly.
func (h *StreamHandler) Stream(c *gin.Context) {
	dataset, _, ok := h.store.Current()
	if !ok {
		response.NotFound(c, "No motion dataset ingested yet")
		return
	}

	fps := 60
	if v := c.Query("fps"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			fps = n
		}
	}
	if fps > int(models.FrameRate) {
		fps = int(models.FrameRate)
	}
	step := int(models.FrameRate) / fps
	if step < 1 {
		step = 1
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	defer conn.Close()

	// Drain client messages so close frames are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for i := 0; i < len(dataset.Frames); i += step {
		<-ticker.C
		msg := streamFrame{
			Frame: dataset.Frames[i],
			Index: i,
			Total: len(dataset.Frames),
			Done:  i+step >= len(dataset.Frames),
		}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("stream write failed: %v", err)
			return
		}
	}
}
