package controller

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/service"
	"turnstone_admin_v1/pkg/utils"
)

// 单个上传文件上限 10MB
const maxUploadSize = 10 << 20

type UploadController struct {
	storage service.StorageProvider
}

func NewUploadController(storage service.StorageProvider) *UploadController {
	return &UploadController{storage: storage}
}

// Upload 上传图片
// @Summary 上传图片
// @Description multipart 表单，字段名 file，返回公开访问 URL
// @Tags Upload (上传)
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片文件"
// @Success 200 {object} map[string]string "{"url": "https://..."}"
// @Failure 400 {object} map[string]string "文件错误"
// @Failure 500 {object} map[string]string "上传失败"
// @Router /api/v1/upload [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "缺少上传文件"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "文件超过 10MB 限制"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "打开文件失败"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "读取文件失败"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "只支持图片文件"})
		return
	}

	url, err := c.storage.Upload(ctx.Request.Context(), data, fileHeader.Filename, contentType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "上传失败: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadFromURL 转存外部图片
// @Summary 从外部 URL 转存图片
// @Description 下载外部图片后重新上传到自己的存储，返回新 URL
// @Tags Upload (上传)
// @Accept json
// @Produce json
// @Param request body object{url=string} true "外部图片地址"
// @Success 200 {object} map[string]string "{"url": "https://..."}"
// @Failure 400 {object} map[string]string "下载失败或不是图片"
// @Router /api/v1/upload/from-url [post]
func (c *UploadController) UploadFromURL(ctx *gin.Context) {
	var req struct {
		Url string `json:"url" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "参数错误: " + err.Error()})
		return
	}

	data, err := utils.DownloadImage(ctx.Request.Context(), req.Url)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "下载失败: " + err.Error()})
		return
	}
	if len(data) > maxUploadSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "文件超过 10MB 限制"})
		return
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "只支持图片文件"})
		return
	}

	url, err := c.storage.Upload(ctx.Request.Context(), data, req.Url, contentType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "上传失败: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}
