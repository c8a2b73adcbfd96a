package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type EventController struct{ ec EventUseCase }

func NewEventController(ec EventUseCase) *EventController { return &EventController{ec: ec} }

func (ctl *EventController) Page(c *gin.Context) {
	events := ctl.ec.ListEvents(c.Request.Context())
	c.HTML(http.StatusOK, "events.html", gin.H{"Title": "Events", "Events": events})
}

func (ctl *EventController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"events": ctl.ec.ListEvents(c.Request.Context())})
}
