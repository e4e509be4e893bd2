package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/vitalog/vitalog/internal/domain/health"
)

func (s *Server) MountMetrics() {
	sessionRequired := SessionRequired(s.issuer)
	s.handler.GET("/metrics", s.ListMetrics, sessionRequired)
	s.handler.GET("/metrics/today", s.GetTodayMetrics, sessionRequired)
	s.handler.GET("/metrics/weekly", s.GetWeeklyAverage, sessionRequired)
}

type MetricsResponse struct {
	Date       string  `json:"date"`
	Steps      int     `json:"steps"`
	Calories   int     `json:"calories"`
	HeartRate  int     `json:"heart_rate"`
	SleepHours float64 `json:"sleep_hours"`
}

func toMetricsResponse(m health.Metrics) MetricsResponse {
	return MetricsResponse{
		Date:       m.Date,
		Steps:      m.Steps,
		Calories:   m.Calories,
		HeartRate:  m.HeartRate,
		SleepHours: m.SleepHours,
	}
}

type ListMetricsResponse struct {
	Metrics []MetricsResponse `json:"metrics"`
}

// ListMetrics returns the full daily history, ascending by date, for the
// history charts.
func (s *Server) ListMetrics(c echo.Context) error {
	data := s.store.HealthData()
	return c.JSON(http.StatusOK, ListMetricsResponse{
		Metrics: lo.Map(data, func(m health.Metrics, _ int) MetricsResponse {
			return toMetricsResponse(m)
		}),
	})
}

func (s *Server) GetTodayMetrics(c echo.Context) error {
	m := s.store.TodayMetrics()
	if m == nil {
		return JsonError(c, http.StatusNotFound, "no metrics for today")
	}
	return c.JSON(http.StatusOK, toMetricsResponse(*m))
}

type WeeklyAverageResponse struct {
	Steps      int     `json:"steps"`
	Calories   int     `json:"calories"`
	HeartRate  int     `json:"heart_rate"`
	SleepHours float64 `json:"sleep_hours"`
}

func (s *Server) GetWeeklyAverage(c echo.Context) error {
	avg := s.store.WeeklyAverage()
	if avg == nil {
		return JsonError(c, http.StatusNotFound, "no health data recorded")
	}
	return c.JSON(http.StatusOK, WeeklyAverageResponse{
		Steps:      avg.Steps,
		Calories:   avg.Calories,
		HeartRate:  avg.HeartRate,
		SleepHours: avg.SleepHours,
	})
}
