package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/i-am-Shekinah/eventify/internal/middlewares"
	"github.com/i-am-Shekinah/eventify/internal/repository"
	"github.com/i-am-Shekinah/eventify/internal/service"
)

type EventHandler struct {
	svc *service.EventSvc
}

func NewEventHandler(svc *service.EventSvc) *EventHandler {
	return &EventHandler{svc: svc}
}

type eventBody struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

func (b eventBody) input() service.EventInput {
	return service.EventInput{
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Date:        b.Date,
	}
}

// POST /api/events
func (h *EventHandler) Create(c *gin.Context) {
	var in eventBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := middlewares.CurrentUser(c)
	e, err := h.svc.Create(c.Request.Context(), u.ID, in.input())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Location", "/api/events/"+e.ID)
	c.JSON(http.StatusCreated, e)
}

// GET /api/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	e, err := h.svc.Get(c.Request.Context(), u.ID, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// GET /api/events?page=1&size=20
func (h *EventHandler) List(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	page, size := pageParams(c)
	items, total, err := h.svc.List(c.Request.Context(), u.ID, page, size)
	if err != nil {
		respondErr(c, err)
		return
	}
	pagedJSON(c, items, total, page, size)
}

// PUT /api/events/:id
//
// Full replace: all four mutable fields are written unconditionally, so a
// field the client leaves out of the body is cleared.
func (h *EventHandler) Replace(c *gin.Context) {
	var in eventBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := middlewares.CurrentUser(c)
	e, err := h.svc.Replace(c.Request.Context(), u.ID, c.Param("id"), in.input())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// PATCH /api/events/:id
func (h *EventHandler) Patch(c *gin.Context) {
	var in struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Location    *string    `json:"location"`
		Date        *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u := middlewares.CurrentUser(c)
	e, err := h.svc.Patch(c.Request.Context(), u.ID, c.Param("id"), service.EventPatch{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /api/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	u := middlewares.CurrentUser(c)
	if err := h.svc.Delete(c.Request.Context(), u.ID, c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/events/search?title=&description=&location=&startDate=&endDate=&order=asc|desc
func (h *EventHandler) Search(c *gin.Context) {
	f := repository.EventFilter{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Location:    c.Query("location"),
	}
	if q := c.Query("startDate"); q != "" {
		t, err := parseTime(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad startDate"})
			return
		}
		f.From = &t
	}
	if q := c.Query("endDate"); q != "" {
		t, err := parseTime(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad endDate"})
			return
		}
		f.To = &t
	}
	u := middlewares.CurrentUser(c)
	page, size := pageParams(c)
	items, total, err := h.svc.Search(c.Request.Context(), u.ID, f, page, size, c.Query("order") == "desc")
	if err != nil {
		respondErr(c, err)
		return
	}
	pagedJSON(c, items, total, page, size)
}
