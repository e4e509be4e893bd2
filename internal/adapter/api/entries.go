package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/vitalog/vitalog/internal/domain/entry"
)

func (s *Server) MountEntries() {
	sessionRequired := SessionRequired(s.issuer)
	entries := s.handler.Group("/entries", sessionRequired)

	entries.POST("/weight", s.AddWeightEntry)
	entries.GET("/weight", s.ListWeightEntries)

	entries.POST("/blood-pressure", s.AddBloodPressureEntry)
	entries.GET("/blood-pressure", s.ListBloodPressureEntries)

	entries.POST("/sleep", s.AddSleepEntry)
	entries.GET("/sleep", s.ListSleepEntries)
}

// Numeric range checks live here, caller-side: the store trusts its callers
// and performs no input validation.

type addWeightReq struct {
	WeightKg float64 `json:"weight" validate:"required,gt=0"`
}

type WeightEntryResponse struct {
	ID       string  `json:"id"`
	WeightKg float64 `json:"weight"`
	Date     string  `json:"date"`
}

func (s *Server) AddWeightEntry(c echo.Context) error {
	var b addWeightReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	s.store.AddWeightEntry(c.Request().Context(), b.WeightKg)

	created := s.store.WeightEntries()[0]
	return c.JSON(http.StatusCreated, toWeightResponse(created))
}

func toWeightResponse(e entry.Weight) WeightEntryResponse {
	return WeightEntryResponse{ID: e.ID, WeightKg: e.WeightKg, Date: e.Date}
}

type ListWeightEntriesResponse struct {
	Entries []WeightEntryResponse `json:"entries"`
}

func (s *Server) ListWeightEntries(c echo.Context) error {
	return c.JSON(http.StatusOK, ListWeightEntriesResponse{
		Entries: lo.Map(s.store.WeightEntries(), func(e entry.Weight, _ int) WeightEntryResponse {
			return toWeightResponse(e)
		}),
	})
}

type addBloodPressureReq struct {
	Systolic  int `json:"systolic" validate:"required,gt=0"`
	Diastolic int `json:"diastolic" validate:"required,gt=0"`
}

type BloodPressureEntryResponse struct {
	ID        string `json:"id"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	Date      string `json:"date"`
}

func (s *Server) AddBloodPressureEntry(c echo.Context) error {
	var b addBloodPressureReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	s.store.AddBloodPressureEntry(c.Request().Context(), b.Systolic, b.Diastolic)

	created := s.store.BloodPressureEntries()[0]
	return c.JSON(http.StatusCreated, toBloodPressureResponse(created))
}

func toBloodPressureResponse(e entry.BloodPressure) BloodPressureEntryResponse {
	return BloodPressureEntryResponse{ID: e.ID, Systolic: e.Systolic, Diastolic: e.Diastolic, Date: e.Date}
}

type ListBloodPressureEntriesResponse struct {
	Entries []BloodPressureEntryResponse `json:"entries"`
}

func (s *Server) ListBloodPressureEntries(c echo.Context) error {
	return c.JSON(http.StatusOK, ListBloodPressureEntriesResponse{
		Entries: lo.Map(s.store.BloodPressureEntries(), func(e entry.BloodPressure, _ int) BloodPressureEntryResponse {
			return toBloodPressureResponse(e)
		}),
	})
}

type addSleepReq struct {
	Hours   float64 `json:"hours" validate:"required,gt=0,lte=24"`
	Quality string  `json:"quality" validate:"required,oneof=poor fair good excellent"`
}

type SleepEntryResponse struct {
	ID      string  `json:"id"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality"`
	Date    string  `json:"date"`
}

func (s *Server) AddSleepEntry(c echo.Context) error {
	var b addSleepReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	s.store.AddSleepEntry(c.Request().Context(), b.Hours, entry.Quality(b.Quality))

	created := s.store.SleepEntries()[0]
	return c.JSON(http.StatusCreated, toSleepResponse(created))
}

func toSleepResponse(e entry.Sleep) SleepEntryResponse {
	return SleepEntryResponse{ID: e.ID, Hours: e.Hours, Quality: string(e.Quality), Date: e.Date}
}

type ListSleepEntriesResponse struct {
	Entries []SleepEntryResponse `json:"entries"`
}

func (s *Server) ListSleepEntries(c echo.Context) error {
	return c.JSON(http.StatusOK, ListSleepEntriesResponse{
		Entries: lo.Map(s.store.SleepEntries(), func(e entry.Sleep, _ int) SleepEntryResponse {
			return toSleepResponse(e)
		}),
	})
}
