package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/middleware"
)

// messageDurationMs is how long the page banner stays visible.
const messageDurationMs = 3000

// Branding is shown on every page
type Branding struct {
	AppName string
	Brand   string
	Year    int
}

// PageData is the template context of the HTML pages
type PageData struct {
	Title           string
	AppName         string
	Brand           string
	Year            int
	UserName        string
	Role            string
	HostelOptions   []string
	MessageDuration int
}

// PageController renders the server-side pages. Access control is done by
// the page gate before these handlers run.
type PageController struct {
	branding Branding
}

// NewPageController creates a new PageController
func NewPageController(branding Branding) *PageController {
	return &PageController{branding: branding}
}

func (c *PageController) data(ctx *gin.Context, title string) PageData {
	data := PageData{
		Title:           title,
		AppName:         c.branding.AppName,
		Brand:           c.branding.Brand,
		Year:            c.branding.Year,
		HostelOptions:   models.HostelOptions,
		MessageDuration: messageDurationMs,
	}
	if session := middleware.GetSession(ctx); session != nil {
		data.UserName = session.Name
		data.Role = string(session.Role)
	}
	return data
}

// Login renders the sign-in page
func (c *PageController) Login(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login", c.data(ctx, "Sign in"))
}

// Dashboard renders the records page
func (c *PageController) Dashboard(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard", c.data(ctx, "Records"))
}

// Users renders the admin account page
func (c *PageController) Users(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "users", c.data(ctx, "Admins"))
}
