package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController { return &PageController{} }

func (ctl *PageController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Home"})
}

func (ctl *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Title": "About"})
}

func (ctl *PageController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{"Title": "Contact"})
}
