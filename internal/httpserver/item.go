package httpserver

import (
	"errors"
	"net/http"

	"techinventory/internal/domain"
	itemsvc "techinventory/internal/service/item"
	"techinventory/internal/upload"
	"github.com/gin-gonic/gin"
)

func itemListHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "item_list.html", gin.H{
			"Title": "Item List",
			"Items": items,
		})
	}
}

func itemDetailHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(c, "Item not found")
			return
		}
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "item_detail.html", gin.H{
			"Title":    "Item details",
			"Item":     detail.Item,
			"Category": detail.Category,
		})
	}
}

func itemCreateGetHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.CategoryOptions(c.Request.Context())
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "item_form.html", gin.H{
			"Title":            "Create item",
			"Categories":       categories,
			"SelectedCategory": "",
		})
	}
}

func itemCreatePostHandler(svc ItemService, uploads *upload.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := itemInputFromForm(c, uploads)
		if !ok {
			return
		}
		res, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			renderServerError(c)
			return
		}
		if res.Status == domain.StatusInvalid {
			c.HTML(http.StatusOK, "item_form.html", gin.H{
				"Title":            "Create item",
				"Item":             res.Item,
				"Categories":       res.Categories,
				"SelectedCategory": res.SelectedCategory,
				"Errors":           res.Errors,
			})
			return
		}
		c.Redirect(http.StatusFound, res.Item.URL())
	}
}

func itemUpdateGetHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(c, "Item not found")
			return
		}
		if err != nil {
			renderServerError(c)
			return
		}
		categories, err := svc.CategoryOptions(c.Request.Context())
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "item_form.html", gin.H{
			"Title":            "Update item",
			"Item":             detail.Item,
			"Categories":       categories,
			"SelectedCategory": detail.Item.CategoryID,
			"IsUpdate":         true,
		})
	}
}

func itemUpdatePostHandler(svc ItemService, uploads *upload.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, ok := itemInputFromForm(c, uploads)
		if !ok {
			return
		}
		res, err := svc.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			renderServerError(c)
			return
		}
		switch res.Status {
		case domain.StatusNotFound:
			renderNotFound(c, "Item not found")
		case domain.StatusInvalid:
			c.HTML(http.StatusOK, "item_form.html", gin.H{
				"Title":            "Update item",
				"Item":             res.Item,
				"Categories":       res.Categories,
				"SelectedCategory": res.SelectedCategory,
				"Errors":           res.Errors,
				"IsUpdate":         true,
			})
		default:
			c.Redirect(http.StatusFound, res.Item.URL())
		}
	}
}

func itemDeleteGetHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(c, "Item not found")
			return
		}
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "item_delete.html", gin.H{
			"Title":    "Delete item",
			"Item":     detail.Item,
			"Category": detail.Category,
		})
	}
}

func itemDeletePostHandler(svc ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			renderServerError(c)
			return
		}
		c.Redirect(http.StatusFound, "/inventory/items")
	}
}

// itemInputFromForm collects the submitted fields and stores the
// uploaded image, if any, before the workflow runs. Returns ok=false
// after rendering an error response.
func itemInputFromForm(c *gin.Context, uploads *upload.Storage) (itemsvc.Input, bool) {
	in := itemsvc.Input{
		Name:        c.PostForm("name"),
		Company:     c.PostForm("company"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category"),
		Price:       c.PostForm("price"),
		InStock:     c.PostForm("inStock"),
	}

	fh, err := c.FormFile("itemImage")
	if err != nil || uploads == nil {
		return in, true
	}
	path, err := uploads.Save(fh)
	if err != nil {
		renderServerError(c)
		return in, false
	}
	in.ImagePath = path
	return in, true
}
