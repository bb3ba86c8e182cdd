package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinesport/internal/model"
	"cinesport/internal/service"
	serviceMocks "cinesport/internal/service/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	mockSvc := new(serviceMocks.MockFavoriteService)
	app := fiber.New()
	app.Use(asUser(testUserID))
	app.Post("/favorites/add", AddFavorite(mockSvc))
	app.Get("/favorites", ListFavorites(mockSvc))
	app.Delete("/favorites/remove", RemoveFavorite(mockSvc))

	t.Run("add", func(t *testing.T) {
		mockSvc.On("Add", mock.Anything, testUserID, int64(603)).Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/favorites/add", `{"movieId":603}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("add duplicate", func(t *testing.T) {
		mockSvc.On("Add", mock.Anything, testUserID, int64(603)).Return(&service.Error{Kind: service.ErrInvalidInput, Msg: "movie is already a favorite"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/favorites/add", `{"movieId":603}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "movie is already a favorite", decodeError(t, resp).Error.Message)
	})

	t.Run("add without movie", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/favorites/add", `{}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("list", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, testUserID).Return([]model.Favorite{{UserID: testUserID, Movie: model.Movie{TMDBID: 603}}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/favorites", nil))
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body []model.Favorite
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(603), body[0].Movie.TMDBID)
	})

	t.Run("remove", func(t *testing.T) {
		mockSvc.On("Remove", mock.Anything, testUserID, int64(603)).Return(nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodDelete, "/favorites/remove", `{"movieId":603}`))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestToggleReaction(t *testing.T) {
	mockSvc := new(serviceMocks.MockReactionService)
	app := fiber.New()
	app.Post("/likes", asUser(testUserID), ToggleReaction(mockSvc))

	t.Run("switched", func(t *testing.T) {
		mockSvc.On("Toggle", mock.Anything, testUserID, int64(603), "dislike").
			Return(&service.ReactionResult{Action: "switched", Type: "dislike"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/likes", `{"movieId":603,"type":"dislike"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body service.ReactionResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "switched", body.Action)
	})

	t.Run("bad type", func(t *testing.T) {
		mockSvc.On("Toggle", mock.Anything, testUserID, int64(603), "love").
			Return(nil, &service.Error{Kind: service.ErrInvalidInput, Msg: "type must be like or dislike"}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/likes", `{"movieId":603,"type":"love"}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}

func TestReactionRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockReactionService)
	app := fiber.New()
	RegisterRoutes(app, Deps{Tokens: stubTokens{}, Reactions: mockSvc})

	t.Run("my likes is not a movie id", func(t *testing.T) {
		mockSvc.On("Mine", mock.Anything, testUserID, model.ReactionLike).Return([]model.Reaction{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/likes/my-likes", nil)
		req.Header.Set("Authorization", "Bearer valid")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("counts are public", func(t *testing.T) {
		mockSvc.On("Counts", mock.Anything, int64(603)).Return(&model.ReactionCounts{Likes: 3, Dislikes: 1}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/likes/603", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body model.ReactionCounts
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, model.ReactionCounts{Likes: 3, Dislikes: 1}, body)
	})

	mockSvc.AssertExpectations(t)
}

func TestRecommendations(t *testing.T) {
	mockSvc := new(serviceMocks.MockRecommendationService)
	app := fiber.New()
	app.Use(asUser(testUserID))
	app.Post("/recommendations", SendRecommendation(mockSvc))
	app.Get("/recommendations/received/count", CountRecommendations(mockSvc))
	app.Delete("/recommendations/:id", DeleteRecommendation(mockSvc))

	receiver := "0b7e1f52-2c35-4b59-9b7a-7f0f6a4f9d11"

	t.Run("send", func(t *testing.T) {
		in := service.RecommendInput{ReceiverID: receiver, TMDBID: 603, Message: "watch it"}
		mockSvc.On("Send", mock.Anything, testUserID, in).Return(&model.Recommendation{ID: "r-1", ReceiverID: receiver}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/recommendations", `{"receiver_id":"`+receiver+`","tmdb_id":603,"message":"watch it"}`))
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("send malformed receiver", func(t *testing.T) {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/recommendations", `{"receiver_id":"not-a-uuid","tmdb_id":603}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		e := decodeError(t, resp)
		assert.Equal(t, "INVALID_INPUT", e.Error.Code)
		assert.Equal(t, "receiver_id must be a valid id", e.Error.Message)
		mockSvc.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("count", func(t *testing.T) {
		mockSvc.On("CountReceived", mock.Anything, testUserID).Return(4, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/recommendations/received/count", nil))
		var body countResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 4, body.Count)
	})

	t.Run("delete someone else's", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, testUserID, receiver).
			Return(&service.Error{Kind: service.ErrForbidden, Msg: "only the receiver can delete a recommendation"}).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/recommendations/"+receiver, nil))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("delete invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/recommendations/42", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	mockSvc.AssertExpectations(t)
}
