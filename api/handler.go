package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/olls-san/tecopos-helpcenter/models"
	"github.com/olls-san/tecopos-helpcenter/services"
	"github.com/olls-san/tecopos-helpcenter/storage"
	"github.com/olls-san/tecopos-helpcenter/utils"

	"github.com/gin-gonic/gin"
)

// notFoundMessage is the body of the detail page's 404 response. The Spanish
// wording is part of the public surface.
const notFoundMessage = "Error no encontrado"

// APIHandler holds all dependencies for the HTTP handlers.
type APIHandler struct {
	articleService services.ArticleService
	fileStorage    storage.FileStorage
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(articleService services.ArticleService, fileStorage storage.FileStorage) *APIHandler {
	return &APIHandler{
		articleService: articleService,
		fileStorage:    fileStorage,
	}
}

// HomeHandler renders the landing page: featured articles by default, a
// category filter when ?category= is present, optionally narrowed by ?q=.
func (h *APIHandler) HomeHandler(c *gin.Context) {
	q := c.Query("q")
	category := c.Query("category")

	articles, categories, err := h.articleService.Home(q, category)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo cargar el centro de ayuda.", err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"errors":            articles,
		"categories":        categories,
		"q":                 q,
		"selected_category": category,
	})
}

// ErrorsListHandler renders the full article list with the same filter and
// search semantics as the home page, minus the featured default.
func (h *APIHandler) ErrorsListHandler(c *gin.Context) {
	q := c.Query("q")
	category := c.Query("category")

	articles, categories, err := h.articleService.ErrorsList(q, category)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo cargar el listado.", err)
		return
	}

	c.HTML(http.StatusOK, "errors.html", gin.H{
		"errors":            articles,
		"categories":        categories,
		"q":                 q,
		"selected_category": category,
	})
}

// DocsByTypeHandler renders the articles of one document type. An unknown
// type renders an empty page rather than failing.
func (h *APIHandler) DocsByTypeHandler(c *gin.Context) {
	docType := c.Param("doc_type")

	articles, err := h.articleService.DocsByType(docType)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo cargar el listado.", err)
		return
	}

	c.HTML(http.StatusOK, "docs_type.html", gin.H{
		"items":    articles,
		"doc_type": docType,
	})
}

// CategoriesHandler renders article counts per visible category.
func (h *APIHandler) CategoriesHandler(c *gin.Context) {
	counts, err := h.articleService.CategoryCounts()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo cargar las categorías.", err)
		return
	}

	c.HTML(http.StatusOK, "categories.html", gin.H{
		"categories": counts,
	})
}

// ErrorDetailHandler renders one article. A missing or unparsable id yields
// a plain 404 body.
func (h *APIHandler) ErrorDetailHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, notFoundMessage)
		return
	}

	article, err := h.articleService.Detail(uint(id))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo cargar el artículo.", err)
		return
	}
	if article == nil {
		c.String(http.StatusNotFound, notFoundMessage)
		return
	}

	c.HTML(http.StatusOK, "error_detail.html", gin.H{
		"error": article,
	})
}

// AdminPanelHandler renders the management listing.
func (h *APIHandler) AdminPanelHandler(c *gin.Context) {
	articles, err := h.articleService.AdminList()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo cargar el panel.", err)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"errors": articles,
	})
}

// AdminCreateHandler processes the article creation form: scalar fields,
// multi-line list fields, uploaded images and an optional video. Which fields
// matter depends on the selected type; irrelevant ones are simply stored
// empty. Responds with a 303 redirect so a refresh does not resubmit.
func (h *APIHandler) AdminCreateHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Formulario inválido.", err)
		return
	}

	title := c.PostForm("title")
	if title == "" {
		utils.SendError(c, http.StatusBadRequest, "El título es obligatorio.", nil)
		return
	}

	imageURLs := []string{}
	for _, fileHeader := range form.File["image_files"] {
		if fileHeader == nil || fileHeader.Filename == "" {
			// Malformed upload entry; skip this file, keep the submission.
			continue
		}
		src, err := fileHeader.Open()
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "No se pudo procesar la imagen.", err)
			return
		}
		url, err := h.fileStorage.Save(src, fileHeader.Filename, storage.FolderImages)
		src.Close()
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "No se pudo guardar la imagen.", err)
			return
		}
		imageURLs = append(imageURLs, url)
	}

	// At most one video per submission.
	videoURL := ""
	if videos := form.File["video_file"]; len(videos) > 0 && videos[0] != nil && videos[0].Filename != "" {
		src, err := videos[0].Open()
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "No se pudo procesar el video.", err)
			return
		}
		url, err := h.fileStorage.Save(src, videos[0].Filename, storage.FolderVideos)
		src.Close()
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "No se pudo guardar el video.", err)
			return
		}
		videoURL = url
	}

	draft := &models.ArticleDraft{
		Type:             c.DefaultPostForm("type", models.DocTypeError),
		Title:            title,
		PrimaryCategory:  c.DefaultPostForm("primary_category", models.CategoryErrors),
		Category:         c.PostForm("category"),
		IsCommon:         parseCheckbox(c.PostForm("is_common")),
		ShortDescription: c.PostForm("short_description"),
		Description:      c.PostForm("description"),
		ClientMessage:    c.PostForm("client_message"),
		Causes:           models.ParseLines(c.PostForm("causes")),
		QuickSteps:       models.ParseLines(c.PostForm("quick_steps")),
		InternalSteps:    models.ParseLines(c.PostForm("internal_steps")),
		Steps:            models.ParseLines(c.PostForm("steps")),
		Answer:           c.PostForm("answer"),
		Tags:             models.ParseLines(c.PostForm("tags")),
		Images:           imageURLs,
		VideoURL:         videoURL,
	}

	created, err := h.articleService.Create(draft)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo crear el artículo.", err)
		return
	}
	log.Printf("INFO: [AdminHandler] Created article ID %d ('%s') via admin form.", created.ID, created.Title)

	c.Redirect(http.StatusSeeOther, "/admin")
}

// AdminDeleteHandler removes an article and redirects back to the panel.
// Deleting an id that does not exist still redirects; it is not an error.
func (h *APIHandler) AdminDeleteHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Identificador inválido.", err)
		return
	}

	if err := h.articleService.Delete(uint(id)); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "No se pudo eliminar el artículo.", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// parseCheckbox interprets the usual truthy form values for a checkbox field.
func parseCheckbox(value string) bool {
	switch value {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}
