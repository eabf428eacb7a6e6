package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-am-Shekinah/eventify/internal/domain"
	"github.com/i-am-Shekinah/eventify/internal/middlewares"
	"github.com/i-am-Shekinah/eventify/internal/service"
)

type ParticipantHandler struct {
	svc *service.ParticipantSvc
}

func NewParticipantHandler(svc *service.ParticipantSvc) *ParticipantHandler {
	return &ParticipantHandler{svc: svc}
}

// POST /api/participants/upload/:eventId  (multipart, field "file")
func (h *ParticipantHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	u := middlewares.CurrentUser(c)
	res, err := h.svc.IngestCSV(c.Request.Context(), u.ID, c.Param("eventId"), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/participants/event/:eventId
func (h *ParticipantHandler) List(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	page, size := pageParams(c)
	items, total, err := h.svc.List(c.Request.Context(), u.ID, c.Param("eventId"), page, size)
	if err != nil {
		respondErr(c, err)
		return
	}
	pagedJSON(c, items, total, page, size)
}

// PATCH /api/participants/event/:eventId/:participantId/status
func (h *ParticipantHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	st, ok := domain.ParseInvitationStatus(in.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown_status"})
		return
	}
	u := middlewares.CurrentUser(c)
	p, err := h.svc.UpdateStatus(c.Request.Context(), u.ID, c.Param("eventId"), c.Param("participantId"), st)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
