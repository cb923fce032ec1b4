package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func homeHandler(svc InventoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.Request.Context())
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Title":         "Tech Inventory",
			"ItemCount":     summary.ItemCount,
			"CategoryCount": summary.CategoryCount,
		})
	}
}
