package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phka/internal/services"
	"phka/pkg/utils"
)

type UploadController struct {
	storageService services.StorageServiceInterface
}

func NewUploadController(storageService services.StorageServiceInterface) *UploadController {
	return &UploadController{storageService: storageService}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Stores the image in object storage and returns its public URL
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpg, png, webp)"
// @Success 200 {object} utils.APIResponse
// @Router /upload [post]
func (u *UploadController) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing file")
		return
	}

	url, err := u.storageService.UploadImage(c.Request.Context(), fileHeader)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondSuccess(c, gin.H{"url": url}, "File uploaded")
}
