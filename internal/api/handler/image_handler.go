package handler

import (
	"Faceoff/internal/pkg/response"
	"Faceoff/internal/service"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	imageSvc service.ImageService
}

func NewImageHandler(imageSvc service.ImageService) *ImageHandler {
	return &ImageHandler{imageSvc: imageSvc}
}

// GetImage 查询单张图片的累计战绩
func (s *ImageHandler) GetImage(c *gin.Context) {
	image, err := s.imageSvc.GetImage(c.Request.Context(), c.Param("image_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, image)
}

// GetPair 随机抽一组待对战图片
func (s *ImageHandler) GetPair(c *gin.Context) {
	pair, err := s.imageSvc.GetRandomPair(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pair)
}
