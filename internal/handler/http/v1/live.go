package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Live feed snapshot
// @Description Most recent live events (newest first) and the running counters. Requires API key.
// @Tags Live
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.LiveSnapshot
// @Router /live [get]
func (h *Handler) liveSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Snapshot())
}

// @Summary Clear live feed
// @Description Empty the event log. Counters are kept. Requires API key.
// @Tags Live
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Router /live [delete]
func (h *Handler) clearLive(c *gin.Context) {
	h.feed.Clear()
	h.logger.WithField("method", "clearLive").Info("Live event log cleared")
	c.Status(http.StatusNoContent)
}

// @Summary Ingest a live event
// @Description Publish an external event into the live feed. Requires API key.
// @Tags Live
// @Accept json
// @Security ApiKeyAuth
// @Param event body LiveEventRequest true "Live event"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /live/events [post]
func (h *Handler) ingestLiveEvent(c *gin.Context) {
	var input LiveEventRequest
	log := h.logger.WithField("method", "ingestLiveEvent")

	if !h.bind(c, log, &input) {
		return
	}

	if err := h.events.Publish(c.Request.Context(), DTOToLiveEvent(input)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Live feed stream
// @Description Websocket stream: the current snapshot first, then every ingested event. Requires API key.
// @Tags Live
// @Security ApiKeyAuth
// @Success 101 "Switching Protocols"
// @Router /live/stream [get]
func (h *Handler) liveStream(c *gin.Context) {
	h.stream.ServeWS(c.Writer, c.Request, h.feed.Snapshot)
}
