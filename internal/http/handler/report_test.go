package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinesport/internal/model"
	"cinesport/internal/service"
	serviceMocks "cinesport/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateReport(t *testing.T) {
	mockSvc := new(serviceMocks.MockReportService)
	app := fiber.New()
	app.Post("/reports", asUser(testUserID), CreateReport(mockSvc))

	reported := "0b7e1f52-2c35-4b59-9b7a-7f0f6a4f9d11"
	in := service.ReportInput{ReportedID: reported, EventID: testEventID, Type: model.ReportNoShow}
	body := `{"reported_id":"` + reported + `","event_id":"` + testEventID + `","type":"no_show"}`

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, in).Return(&model.Report{ID: "r-1"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/reports", body))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("reporter not a participant", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, in).
			Return(nil, &service.Error{Kind: service.ErrForbidden, Msg: "only confirmed participants can report"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/reports", body))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("malformed ids", func(t *testing.T) {
		cases := map[string]string{
			"event_id":    `{"reported_id":"` + reported + `","event_id":"abc","type":"no_show"}`,
			"reported_id": `{"reported_id":"42","event_id":"` + testEventID + `","type":"no_show"}`,
		}
		for field, body := range cases {
			resp, _ := app.Test(jsonRequest(http.MethodPost, "/reports", body))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, field)
			e := decodeError(t, resp)
			assert.Equal(t, "INVALID_INPUT", e.Error.Code)
			assert.Equal(t, field+" must be a valid id", e.Error.Message)
		}
	})

	t.Run("missing ids reach the service", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, testUserID, service.ReportInput{Type: model.ReportNoShow}).
			Return(nil, &service.Error{Kind: service.ErrInvalidInput, Msg: "reported_id, event_id and type are required"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/reports", `{"type":"no_show"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "reported_id, event_id and type are required", decodeError(t, resp).Error.Message)
	})

	mockSvc.AssertExpectations(t)
}

func TestListReports(t *testing.T) {
	mockSvc := new(serviceMocks.MockReportService)
	app := fiber.New()
	app.Get("/reports", ListReports(mockSvc))

	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f model.ReportFilter) bool {
		return f.Type == "late" && f.From != nil && f.To != nil && f.ReportedID == ""
	}), 1, 10).Return(&service.ReportListResult{Reports: []model.Report{}, CurrentPage: 1}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports?type=late&from=2026-10-01&to=2026-10-31T23:59:59Z", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/reports?reported_id=abc", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "reported_id must be a valid id", decodeError(t, resp).Error.Message)

	mockSvc.AssertExpectations(t)
	mockSvc.AssertNumberOfCalls(t, "List", 1)
}

func TestUserReports(t *testing.T) {
	mockSvc := new(serviceMocks.MockReportService)
	app := fiber.New()
	app.Get("/reports/user/:userId", UserReports(mockSvc))

	mockSvc.On("ForUser", mock.Anything, testUserID, "").
		Return(&service.UserReports{Reports: []model.Report{}, Counts: map[string]int{"late": 2}}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/reports/user/"+testUserID, nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}
