package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platformSvc service.PlatformService
}

func NewPlatformHandler(platformSvc service.PlatformService) *PlatformHandler {
	return &PlatformHandler{
		platformSvc: platformSvc,
	}
}

func (s *PlatformHandler) ListPlatforms(c *gin.Context) {
	platforms, err := s.platformSvc.ListPlatforms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, platforms)
}

func (s *PlatformHandler) CreatePlatform(c *gin.Context) {
	var req dto.CreatePlatformDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	platform, err := s.platformSvc.CreatePlatform(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, platform)
}

// DeletePlatform 平台 id 放在请求体中
func (s *PlatformHandler) DeletePlatform(c *gin.Context) {
	var req dto.DeletePlatformDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrPlatformIDRequired)
		return
	}
	result, err := s.platformSvc.DeletePlatform(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
