package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"techinventory/internal/domain"
	categorysvc "techinventory/internal/service/category"
	inventorysvc "techinventory/internal/service/inventory"
	itemsvc "techinventory/internal/service/item"
	"techinventory/internal/upload"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryService is the category workflow surface the handlers need.
type CategoryService interface {
	List(ctx context.Context) ([]domain.CategoryOption, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Detail(ctx context.Context, id string) (*categorysvc.Detail, error)
	Create(ctx context.Context, in categorysvc.Input) (*categorysvc.Result, error)
	Update(ctx context.Context, id string, in categorysvc.Input, adminPassword string) (*categorysvc.Result, error)
	Delete(ctx context.Context, id string, adminPassword string) (*categorysvc.DeleteResult, error)
}

// ItemService is the item workflow surface the handlers need.
type ItemService interface {
	List(ctx context.Context) ([]domain.ItemSummary, error)
	CategoryOptions(ctx context.Context) ([]domain.CategoryOption, error)
	Detail(ctx context.Context, id string) (*itemsvc.Detail, error)
	Create(ctx context.Context, in itemsvc.Input) (*itemsvc.Result, error)
	Update(ctx context.Context, id string, in itemsvc.Input) (*itemsvc.Result, error)
	Delete(ctx context.Context, id string) error
}

// InventoryService provides the home page summary.
type InventoryService interface {
	Summary(ctx context.Context) (*inventorysvc.Summary, error)
}

// Deps bundles the collaborators the router needs.
type Deps struct {
	CategorySvc  CategoryService
	ItemSvc      ItemService
	InventorySvc InventoryService
	Uploads      *upload.Storage
}

// buildRouter wires the server-rendered inventory routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, templateGlob string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	router.LoadHTMLGlob(templateGlob)
	if deps.Uploads != nil {
		router.Static(upload.PublicPrefix, deps.Uploads.Dir())
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/inventory")
	})

	inv := router.Group("/inventory")
	{
		inv.GET("", homeHandler(deps.InventorySvc))

		inv.GET("/items", itemListHandler(deps.ItemSvc))
		inv.GET("/item/create", itemCreateGetHandler(deps.ItemSvc))
		inv.POST("/item/create", itemCreatePostHandler(deps.ItemSvc, deps.Uploads))
		inv.GET("/item/:id", itemDetailHandler(deps.ItemSvc))
		inv.GET("/item/:id/update", itemUpdateGetHandler(deps.ItemSvc))
		inv.POST("/item/:id/update", itemUpdatePostHandler(deps.ItemSvc, deps.Uploads))
		inv.GET("/item/:id/delete", itemDeleteGetHandler(deps.ItemSvc))
		inv.POST("/item/:id/delete", itemDeletePostHandler(deps.ItemSvc))

		inv.GET("/categories", categoryListHandler(deps.CategorySvc))
		inv.GET("/category/create", categoryCreateGetHandler())
		inv.POST("/category/create", categoryCreatePostHandler(deps.CategorySvc))
		inv.GET("/category/:id", categoryDetailHandler(deps.CategorySvc))
		inv.GET("/category/:id/update", categoryUpdateGetHandler(deps.CategorySvc))
		inv.POST("/category/:id/update", categoryUpdatePostHandler(deps.CategorySvc))
		inv.GET("/category/:id/delete", categoryDeleteGetHandler(deps.CategorySvc))
		inv.POST("/category/:id/delete", categoryDeletePostHandler(deps.CategorySvc))
	}

	router.NoRoute(func(c *gin.Context) {
		renderNotFound(c, "Page not found")
	})

	return router, nil
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Title":   "Not Found",
		"Message": message,
	})
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Server Error",
		"Message": "Something went wrong",
	})
}
