package handler

import (
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
	kpiSvc   service.KpiService
}

func NewStatsHandler(statsSvc service.StatsService, kpiSvc service.KpiService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
		kpiSvc:   kpiSvc,
	}
}

func statsParams(c *gin.Context) service.StatsParams {
	return service.StatsParams{
		Platform:  c.Query("platform"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
}

func (s *StatsHandler) GetAudienceReach(c *gin.Context) {
	rows, err := s.statsSvc.GetAudienceReach(c.Request.Context(), statsParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *StatsHandler) GetEngagement(c *gin.Context) {
	rows, err := s.statsSvc.GetEngagement(c.Request.Context(), statsParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *StatsHandler) GetEngagementSeries(c *gin.Context) {
	series, err := s.statsSvc.GetEngagementSeries(c.Request.Context(), statsParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, series)
}

func (s *StatsHandler) GetPerformance(c *gin.Context) {
	rows, err := s.statsSvc.GetPerformance(c.Request.Context(), statsParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *StatsHandler) GetTrends(c *gin.Context) {
	rows, err := s.statsSvc.GetTrends(c.Request.Context(), statsParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

func (s *StatsHandler) GetKpis(c *gin.Context) {
	kpis, err := s.kpiSvc.GetKpis(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, kpis)
}

func (s *StatsHandler) GetPlatformStats(c *gin.Context) {
	stats, err := s.statsSvc.GetPlatformStats(c.Request.Context(), c.Query("platform"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *StatsHandler) GetComparison(c *gin.Context) {
	result, err := s.statsSvc.GetComparison(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
