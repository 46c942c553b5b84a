package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/facility_gis/internal/config"
	"github.com/shenikar/facility_gis/internal/geodata"
	"github.com/shenikar/facility_gis/internal/mapstate"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/shenikar/facility_gis/internal/service"
	"github.com/shenikar/facility_gis/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const boundaryLayer = `{"type":"FeatureCollection","features":[]}`

type fakeLayers map[string]*geodata.Layer

func (f fakeLayers) Get(name string) (*geodata.Layer, bool) {
	l, ok := f[name]
	return l, ok
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockFacilityService, *mocks.MockSessionService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	facilityMock := mocks.NewMockFacilityService(ctrl)
	sessionMock := mocks.NewMockSessionService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:            []string{"test-api-key"},
		BufferRadii:        []float64{0.5, 1, 2},
		DefaultBufferRadii: []float64{0.5, 1},
	}
	layers := fakeLayers{
		geodata.LayerBoundary: {Name: geodata.LayerBoundary, Raw: []byte(boundaryLayer)},
	}

	handler := NewHandler(facilityMock, sessionMock, layers, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return facilityMock, sessionMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

var adminKey = map[string]string{"X-API-Key": "test-api-key"}

func testFacilities() []models.Facility {
	return []models.Facility{
		{ID: uuid.New(), Name: "SD Negeri 1 Sidigede", Type: "SD", Category: models.CategoryEducation, Address: "Jl. Raya Sidigede", Longitude: 110.70, Latitude: -6.754},
		{ID: uuid.New(), Name: "Puskesmas Pembantu", Type: "Pustu", Category: models.CategoryHealth, Address: "Dukuh Krajan", Longitude: 110.71, Latitude: -6.760},
	}
}

func TestListFacilities_GeoJSON(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(testFacilities(), nil)

	w := makeRequest(router, "GET", "/api/v1/facilities?category=Kesehatan", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Puskesmas Pembantu", fc.Features[0].Properties["nama"])
	assert.Equal(t, orb.Point{110.71, -6.760}, fc.Features[0].Geometry)
}

func TestListFacilities_UnknownCategory(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/facilities?category=Pasar", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
}

func TestListFacilities_CatalogueUnavailable(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(nil, fmt.Errorf("%w: connection refused", service.ErrCatalogueUnavailable))

	w := makeRequest(router, "GET", "/api/v1/facilities", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "/facilities/reload")
}

func TestGetStats(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(testFacilities(), nil)

	w := makeRequest(router, "GET", "/api/v1/facilities/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, map[string]int{"Pendidikan": 1, "Kesehatan": 1, "Tempat Ibadah": 0}, resp.ByCategory)
}

func TestReloadFacilities(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().Reload(gomock.Any()).Return(testFacilities(), nil)

	w := makeRequest(router, "POST", "/api/v1/facilities/reload", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":2}`, w.Body.String())
}

func TestReloadFacilities_Failure(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().Reload(gomock.Any()).Return(nil, service.ErrCatalogueUnavailable)

	w := makeRequest(router, "POST", "/api/v1/facilities/reload", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetLayer(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/layers/boundary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, boundaryLayer, w.Body.String())
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))

	w = makeRequest(router, "GET", "/api/v1/layers/roads", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLegend(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/legend", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LegendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 3)
	assert.Equal(t, "#EF4444", resp.Categories[1].Color)
	require.Len(t, resp.Buffers, 3)
	assert.Equal(t, "#3B82F6", resp.Buffers[0].Color)
	assert.Equal(t, "#F59E0B", resp.Buffers[1].Color)
	assert.Equal(t, "#10B981", resp.Buffers[2].Color)
	// У каждой записи свой радиус
	for i, want := range []float64{0.5, 1, 2} {
		require.NotNil(t, resp.Buffers[i].RadiusKm)
		assert.Equal(t, want, *resp.Buffers[i].RadiusKm)
	}
	assert.Equal(t, "Radius 500 m", resp.Buffers[0].Label)
}

func TestNearestFacility(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilities := testFacilities()
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(facilities, nil)

	w := makeRequest(router, "POST", "/api/v1/analysis/nearest", jsonBody(t, map[string]any{
		"latitude": -6.759, "longitude": 110.709,
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp NearestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Facility)
	assert.Equal(t, facilities[1].Name, resp.Facility.Name)
	require.NotNil(t, resp.DistanceKm)
	assert.Less(t, *resp.DistanceKm, 0.2)
	assert.Contains(t, resp.DistanceLabel, " m")
}

func TestNearestFacility_NoCandidates(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(testFacilities(), nil)

	w := makeRequest(router, "POST", "/api/v1/analysis/nearest", jsonBody(t, map[string]any{
		"latitude": -6.759, "longitude": 110.709, "categories": []string{"Tempat Ibadah"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp NearestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Facility)
	assert.Nil(t, resp.DistanceKm)
	assert.Equal(t, [2]float64{110.709, -6.759}, resp.Point)
}

func TestNearestFacility_ValidationError(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/analysis/nearest", jsonBody(t, map[string]any{
		"longitude": 200.0,
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "is required", resp.Fields["latitude"])
	assert.Equal(t, "must be a number between -180 and 180", resp.Fields["longitude"])
}

func TestDistance(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/analysis/distance", jsonBody(t, map[string]any{
		"from": map[string]float64{"latitude": 0, "longitude": 0},
		"to":   map[string]float64{"latitude": 0, "longitude": 1},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DistanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 111.195, resp.DistanceKm, 0.01)
	assert.Equal(t, "111.20 km", resp.DistanceLabel)
	assert.InDelta(t, 0.5, resp.Midpoint[0], 1e-9)
}

func TestDistance_MissingPoint(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/analysis/distance", jsonBody(t, map[string]any{
		"from": map[string]float64{"latitude": 0, "longitude": 0},
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"to.latitude":"is required"`)
}

func TestBuffers(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(testFacilities(), nil).Times(2)

	// По умолчанию 2 объекта x 2 радиуса
	w := makeRequest(router, "GET", "/api/v1/analysis/buffers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	fc, err := geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, fc.Features, 4)
	assert.Equal(t, 0.5, fc.Features[0].Properties["radius_km"])
	assert.Equal(t, 1.0, fc.Features[1].Properties["radius_km"])

	w = makeRequest(router, "GET", "/api/v1/analysis/buffers?radius=2&category=Pendidikan", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	fc, err = geojson.UnmarshalFeatureCollection(w.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "#10B981", fc.Features[0].Properties["color"])
}

func TestBuffers_UnknownRadius(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/analysis/buffers?radius=3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, "GET", "/api/v1/analysis/buffers?radius=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid radius")
}

func TestCoverage(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilities := testFacilities()
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(facilities, nil)

	// Точка совпадает со школой: покрыта ее буферами 0.5 и 1 км,
	// буфер 1 км медпункта (в 1.29 км) до нее не дотягивается
	w := makeRequest(router, "POST", "/api/v1/analysis/coverage", jsonBody(t, map[string]any{
		"latitude": -6.754, "longitude": 110.70,
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp CoverageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Covered)
	require.Len(t, resp.Hits, 2)
	for _, hit := range resp.Hits {
		assert.Equal(t, facilities[0].Key(), hit.FacilityKey)
	}
}

func TestCreateSession(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	facilities := testFacilities()
	view := mapstate.View{
		Mode:              mapstate.ModeNormal,
		Categories:        models.Categories(),
		BufferCatalogue:   []float64{0.5, 1, 2},
		EnabledRadii:      []float64{0.5, 1},
		BuffersShown:      true,
		VisibleFacilities: facilities,
	}
	sessionMock.EXPECT().CreateSession(gomock.Any()).Return(id, view, nil)

	w := makeRequest(router, "POST", "/api/v1/sessions", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "normal", resp.Mode)
	assert.Equal(t, []string{"Pendidikan", "Kesehatan", "Tempat Ibadah"}, resp.Categories)
	require.Len(t, resp.VisibleFacilities, 2)
	assert.Equal(t, facilities[0].Key(), resp.VisibleFacilities[0].Key)
	assert.Nil(t, resp.Probe)
	assert.Nil(t, resp.Measurement)
}

func TestGetSession_InvalidAndMissing(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()

	w := makeRequest(router, "GET", "/api/v1/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid session ID")

	sessionMock.EXPECT().GetSession(gomock.Any(), id).Return(mapstate.View{}, fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound))
	w = makeRequest(router, "GET", fmt.Sprintf("/api/v1/sessions/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "session not found")
}

func TestSelectFacility_Measurement(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	facilities := testFacilities()
	view := mapstate.View{
		Mode:               mapstate.ModeMeasurement,
		MeasurementTargets: facilities,
		Measurement: &mapstate.MeasurementResult{
			From:       facilities[0],
			To:         facilities[1],
			DistanceKm: 1.2912,
			Midpoint:   orb.Point{110.705, -6.757},
		},
	}
	sessionMock.EXPECT().SelectFacility(gomock.Any(), id, facilities[1].Key()).Return(view, nil)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/sessions/%s/measurement/select", id), jsonBody(t, SelectFacilityRequest{Key: facilities[1].Key()}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "measurement", resp.Mode)
	require.NotNil(t, resp.Measurement)
	assert.Equal(t, "1.29 km", resp.Measurement.DistanceLabel)
	assert.Equal(t, [2]float64{110.705, -6.757}, resp.Measurement.Midpoint)
}

func TestSelectFacility_UnknownKey(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	sessionMock.EXPECT().SelectFacility(gomock.Any(), id, "missing").Return(mapstate.View{}, service.ErrFacilityNotFound)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/sessions/%s/measurement/select", id), jsonBody(t, SelectFacilityRequest{Key: "missing"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProbe(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	point := orb.Point{110.709, -6.759}
	view := mapstate.View{
		Mode:  mapstate.ModeNormal,
		Probe: &mapstate.ProbeResult{Point: point},
	}
	sessionMock.EXPECT().Dispatch(gomock.Any(), id, mapstate.ClickMap{Point: point}).Return(view, nil)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/sessions/%s/probe", id), jsonBody(t, map[string]any{
		"latitude": -6.759, "longitude": 110.709,
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Probe)
	assert.Nil(t, resp.Probe.Facility)

	sessionMock.EXPECT().Dispatch(gomock.Any(), id, mapstate.DismissProbe{}).Return(mapstate.View{Mode: mapstate.ModeNormal}, nil)
	w = makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/sessions/%s/probe", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"probe":null`)
}

func TestToggleCategory_Unknown(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	sessionMock.EXPECT().
		Dispatch(gomock.Any(), id, mapstate.ToggleCategory{Category: "Pasar"}).
		Return(mapstate.View{}, fmt.Errorf("%w: %q", mapstate.ErrUnknownCategory, "Pasar"))

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/sessions/%s/categories/toggle", id), jsonBody(t, ToggleCategoryRequest{Category: "Pasar"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown category")
}

func TestToggleBufferRadius(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	sessionMock.EXPECT().
		Dispatch(gomock.Any(), id, mapstate.ToggleBufferRadius{RadiusKm: 2}).
		Return(mapstate.View{EnabledRadii: []float64{0.5, 1, 2}, BuffersShown: true}, nil)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/sessions/%s/buffers/toggle", id), jsonBody(t, map[string]any{"radius_km": 2}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled_radii":[0.5,1,2]`)
}

func TestSetBuffersVisibility(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()

	// shown обязателен: false не должен считаться отсутствующим значением
	sessionMock.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/sessions/%s/buffers/visibility", id), jsonBody(t, map[string]any{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"shown":"is required"`)
}

func TestSetBuffersVisibility_Hide(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	sessionMock.EXPECT().
		Dispatch(gomock.Any(), id, mapstate.SetBuffersShown{Shown: false}).
		Return(mapstate.View{BuffersShown: false}, nil)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/sessions/%s/buffers/visibility", id), jsonBody(t, map[string]any{"shown": false}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"buffers_shown":false`)
}

func TestDeleteSession(t *testing.T) {
	_, sessionMock, router := newTestHandler(t)
	id := uuid.New()
	sessionMock.EXPECT().DeleteSession(gomock.Any(), id).Return(nil)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/sessions/%s", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func validFacilityRequest() map[string]any {
	return map[string]any{
		"nama":      "  TK Pertiwi Sidigede ",
		"jenis":     "TK",
		"kategori":  "Pendidikan",
		"alamat":    "RT 02 RW 01",
		"pengelola": "Yayasan Pertiwi",
		"latitude":  -6.752,
		"longitude": 110.703,
	}
}

func TestAdminSession(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/admin/session", nil, adminKey)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":true}`, w.Body.String())

	w = makeRequest(router, "GET", "/api/v1/admin/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListFacilities_Search(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().ListFacilities(gomock.Any()).Return(testFacilities(), nil)

	w := makeRequest(router, "GET", "/api/v1/admin/facilities?search=krajan", nil, adminKey)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Puskesmas Pembantu", resp[0].Name)
}

func TestCreateFacility_Success(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityID := uuid.New()

	facilityMock.EXPECT().
		CreateFacility(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.Facility) error {
			assert.Equal(t, "TK Pertiwi Sidigede", f.Name) // пробелы обрезаны
			assert.Equal(t, models.CategoryEducation, f.Category)
			f.ID = facilityID
			return nil
		}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, validFacilityRequest()), adminKey)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp FacilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ID)
	assert.Equal(t, facilityID, *resp.ID)
	assert.Equal(t, facilityID.String(), resp.Key)
}

func TestCreateFacility_Unauthorized(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().CreateFacility(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, validFacilityRequest()))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestCreateFacility_InvalidJSON(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().CreateFacility(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", bytes.NewBufferString(`{"nama": "test"`), adminKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateFacility_ValidationError(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().CreateFacility(gomock.Any(), gomock.Any()).Times(0)

	body := validFacilityRequest()
	body["nama"] = "   "
	body["kategori"] = "Pasar"
	body["latitude"] = 91.0
	delete(body, "longitude")

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, body), adminKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, "is required", resp.Fields["nama"])
	assert.Equal(t, "must be one of: Pendidikan, Kesehatan, Tempat Ibadah", resp.Fields["kategori"])
	assert.Equal(t, "must be a number between -90 and 90", resp.Fields["latitude"])
	assert.Equal(t, "is required", resp.Fields["longitude"])
}

func TestCreateFacility_ZeroCoordinatesAccepted(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().CreateFacility(gomock.Any(), gomock.Any()).Return(nil)

	body := validFacilityRequest()
	body["latitude"] = 0.0
	body["longitude"] = 0.0

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, body), adminKey)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateFacility_NonNumericCoordinate(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().CreateFacility(gomock.Any(), gomock.Any()).Times(0)

	body := validFacilityRequest()
	body["latitude"] = "abc"

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, body), adminKey)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, "must be a number", resp.Fields["latitude"])
}

func TestCreateFacility_NameBoundary(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().
		CreateFacility(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.Facility) error {
			assert.Equal(t, "A", f.Name)
			return nil
		}).Times(1)

	// Одного символа после обрезки пробелов достаточно
	body := validFacilityRequest()
	body["nama"] = " A "
	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, body), adminKey)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Пустое после обрезки имя отклоняется
	body["nama"] = "\t "
	w = makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, body), adminKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "is required", resp.Fields["nama"])
}

func TestCreateFacility_ServiceError(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityMock.EXPECT().CreateFacility(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert failed"))

	w := makeRequest(router, "POST", "/api/v1/admin/facilities", jsonBody(t, validFacilityRequest()), adminKey)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateFacility(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityID := uuid.New()

	facilityMock.EXPECT().
		UpdateFacility(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.Facility) error {
			assert.Equal(t, facilityID, f.ID)
			return nil
		})

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/admin/facilities/%s", facilityID), jsonBody(t, validFacilityRequest()), adminKey)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateFacility_InvalidIDAndNotFound(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityID := uuid.New()

	w := makeRequest(router, "PUT", "/api/v1/admin/facilities/invalid-uuid", jsonBody(t, validFacilityRequest()), adminKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid facility ID")

	facilityMock.EXPECT().UpdateFacility(gomock.Any(), gomock.Any()).Return(fmt.Errorf("service: %w", service.ErrFacilityNotFound))
	w = makeRequest(router, "PUT", fmt.Sprintf("/api/v1/admin/facilities/%s", facilityID), jsonBody(t, validFacilityRequest()), adminKey)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "facility not found")
}

func TestDeleteFacility(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityID := uuid.New()
	facilityMock.EXPECT().DeleteFacility(gomock.Any(), facilityID).Return(nil)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/admin/facilities/%s", facilityID), nil, adminKey)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteFacility_NotFound(t *testing.T) {
	facilityMock, _, router := newTestHandler(t)
	facilityID := uuid.New()
	facilityMock.EXPECT().DeleteFacility(gomock.Any(), facilityID).Return(service.ErrFacilityNotFound)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/admin/facilities/%s", facilityID), nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	router := newAuthRouter()

	tests := []struct {
		name    string
		headers map[string]string
		code    int
		body    string
	}{
		{"valid header", map[string]string{"X-API-Key": "valid-key"}, http.StatusOK, ""},
		{"valid bearer", map[string]string{"Authorization": "Bearer valid-key"}, http.StatusOK, ""},
		{"missing", map[string]string{}, http.StatusUnauthorized, "API key required"},
		{"invalid", map[string]string{"X-API-Key": "invalid-key"}, http.StatusUnauthorized, "Invalid API key"},
		{"non-bearer scheme", map[string]string{"Authorization": "Basic valid-key"}, http.StatusUnauthorized, "API key required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := makeRequest(router, "GET", "/test", nil, tt.headers)
			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Contains(t, w.Body.String(), tt.body)
			}
		})
	}
}
