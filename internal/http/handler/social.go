package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinesport/internal/model"
	"cinesport/internal/service"
)

type movieRequest struct {
	MovieID int64 `json:"movieId"`
}

type reactionRequest struct {
	MovieID int64  `json:"movieId"`
	Type    string `json:"type"`
}

type countResponse struct {
	Count int `json:"count"`
}

func (r movieRequest) valid() bool { return r.MovieID > 0 }

// AddFavorite godoc
// @Summary Add a movie to the current user's favorites
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body movieRequest true "TMDB id"
// @Success 201 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Router /favorites/add [post]
func AddFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in movieRequest
		if err := c.BodyParser(&in); err != nil || !in.valid() {
			return invalidBody(c)
		}
		if err := svc.Add(c.UserContext(), currentUser(c), in.MovieID); err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(messageResponse{Message: "movie added to favorites"})
	}
}

// ListFavorites godoc
// @Summary Favorites of the current user
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Favorite
// @Router /favorites [get]
func ListFavorites(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		favs, err := svc.List(c.UserContext(), currentUser(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(favs)
	}
}

// RemoveFavorite godoc
// @Summary Remove a movie from the current user's favorites
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body movieRequest true "TMDB id"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorPayload
// @Router /favorites/remove [delete]
func RemoveFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in movieRequest
		if err := c.BodyParser(&in); err != nil || !in.valid() {
			return invalidBody(c)
		}
		if err := svc.Remove(c.UserContext(), currentUser(c), in.MovieID); err != nil {
			return respondError(c, err)
		}
		return c.JSON(messageResponse{Message: "movie removed from favorites"})
	}
}

// ToggleReaction godoc
// @Summary Like or dislike a movie; repeating the same reaction removes it
// @Tags reactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body reactionRequest true "Reaction"
// @Success 200 {object} service.ReactionResult
// @Failure 400 {object} errorPayload
// @Router /likes [post]
func ToggleReaction(svc service.ReactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in reactionRequest
		if err := c.BodyParser(&in); err != nil || in.MovieID <= 0 {
			return invalidBody(c)
		}
		res, err := svc.Toggle(c.UserContext(), currentUser(c), in.MovieID, in.Type)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// ReactionCounts godoc
// @Summary Like and dislike counts of a movie
// @Tags reactions
// @Produce json
// @Param movieId path int true "TMDB id"
// @Success 200 {object} model.ReactionCounts
// @Failure 400 {object} errorPayload
// @Router /likes/{movieId} [get]
func ReactionCounts(svc service.ReactionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "movieId")
		if !ok {
			return invalidID(c)
		}
		counts, err := svc.Counts(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(counts)
	}
}

// MyReactions lists the current user's reactions of one type.
// @Summary Movies the current user liked or disliked
// @Tags reactions
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Reaction
// @Router /likes/my-likes [get]
// @Router /likes/my-dislikes [get]
func MyReactions(svc service.ReactionService, reactionType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := svc.Mine(c.UserContext(), currentUser(c), reactionType)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
}

// SendRecommendation godoc
// @Summary Recommend a movie to another user
// @Tags recommendations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.RecommendInput true "Recommendation"
// @Success 201 {object} model.Recommendation
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /recommendations [post]
func SendRecommendation(svc service.RecommendationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RecommendInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		if !optionalUUID(in.ReceiverID) {
			return invalidIDField(c, "receiver_id")
		}
		rec, err := svc.Send(c.UserContext(), currentUser(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ReceivedRecommendations godoc
// @Summary Recommendations received by the current user, newest first
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Recommendation
// @Router /recommendations/received [get]
func ReceivedRecommendations(svc service.RecommendationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		recs, err := svc.Received(c.UserContext(), currentUser(c))
		if err != nil {
			return respondError(c, err)
		}
		if recs == nil {
			recs = []model.Recommendation{}
		}
		return c.JSON(recs)
	}
}

// CountRecommendations godoc
// @Summary Number of recommendations received by the current user
// @Tags recommendations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} countResponse
// @Router /recommendations/received/count [get]
func CountRecommendations(svc service.RecommendationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.CountReceived(c.UserContext(), currentUser(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(countResponse{Count: n})
	}
}

// DeleteRecommendation godoc
// @Summary Delete a received recommendation
// @Tags recommendations
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Success 204
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /recommendations/{id} [delete]
func DeleteRecommendation(svc service.RecommendationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), currentUser(c), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
