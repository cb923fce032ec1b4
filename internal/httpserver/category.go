package httpserver

import (
	"errors"
	"net/http"

	"techinventory/internal/domain"
	categorysvc "techinventory/internal/service/category"
	"github.com/gin-gonic/gin"
)

func categoryListHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "category_list.html", gin.H{
			"Title":      "Category List",
			"Categories": categories,
		})
	}
}

func categoryDetailHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(c, "Category not found")
			return
		}
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "category_detail.html", gin.H{
			"Title":    "Category details",
			"Category": detail.Category,
			"Items":    detail.Items,
		})
	}
}

func categoryCreateGetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "category_form.html", gin.H{
			"Title": "Create category",
		})
	}
}

func categoryCreatePostHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := categorysvc.Input{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
		}
		res, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			renderServerError(c)
			return
		}
		if res.Status == domain.StatusInvalid {
			c.HTML(http.StatusOK, "category_form.html", gin.H{
				"Title":    "Create category",
				"Category": res.Category,
				"Errors":   res.Errors,
			})
			return
		}
		c.Redirect(http.StatusFound, res.Category.URL())
	}
}

func categoryUpdateGetHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(c, "Category not found")
			return
		}
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "category_form.html", gin.H{
			"Title":    "Update category",
			"Category": category,
			"IsUpdate": true,
		})
	}
}

func categoryUpdatePostHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := categorysvc.Input{
			Name:        c.PostForm("name"),
			Description: c.PostForm("description"),
		}
		res, err := svc.Update(c.Request.Context(), c.Param("id"), in, c.PostForm("adminPassword"))
		if err != nil {
			renderServerError(c)
			return
		}
		switch res.Status {
		case domain.StatusNotFound:
			renderNotFound(c, "Category not found")
		case domain.StatusInvalid:
			c.HTML(http.StatusOK, "category_form.html", gin.H{
				"Title":    "Update category",
				"Category": res.Category,
				"Errors":   res.Errors,
				"IsUpdate": true,
			})
		default:
			c.Redirect(http.StatusFound, res.Category.URL())
		}
	}
}

func categoryDeleteGetHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if errors.Is(err, domain.ErrNotFound) {
			renderNotFound(c, "Category not found")
			return
		}
		if err != nil {
			renderServerError(c)
			return
		}
		c.HTML(http.StatusOK, "category_delete.html", gin.H{
			"Title":    "Delete category",
			"Category": detail.Category,
			"Items":    detail.Items,
		})
	}
}

func categoryDeletePostHandler(svc CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Delete(c.Request.Context(), c.Param("id"), c.PostForm("adminPassword"))
		if err != nil {
			renderServerError(c)
			return
		}
		switch res.Status {
		case domain.StatusNotFound:
			renderNotFound(c, "Category not found")
		case domain.StatusInvalid:
			c.HTML(http.StatusOK, "category_delete.html", gin.H{
				"Title":    "Delete category",
				"Category": res.Detail.Category,
				"Items":    res.Detail.Items,
				"Errors":   res.Errors,
			})
		default:
			c.Redirect(http.StatusFound, "/inventory/categories")
		}
	}
}
