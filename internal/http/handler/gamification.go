package handler

import (
	"github.com/gofiber/fiber/v2"

	"cinesport/internal/model"
	"cinesport/internal/service"
)

type purchaseResponse struct {
	Message         string `json:"message"`
	RemainingPoints int    `json:"remaining_points"`
}

// ListBadges godoc
// @Summary Badge catalog
// @Tags gamification
// @Produce json
// @Success 200 {array} model.Badge
// @Router /gamification/badges [get]
func ListBadges(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		badges, err := svc.Badges(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(badges)
	}
}

// UserBadges godoc
// @Summary Badges earned and still available for a user
// @Tags gamification
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} service.UserBadges
// @Router /gamification/badges/{userId} [get]
func UserBadges(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "userId")
		if !ok {
			return invalidID(c)
		}
		res, err := svc.UserBadges(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// WeekChallenges godoc
// @Summary Challenges of the current week, assigned on first access
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} model.UserChallenge
// @Router /gamification/challenges/{userId} [get]
func WeekChallenges(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "userId")
		if !ok {
			return invalidID(c)
		}
		list, err := svc.WeekChallenges(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
}

// CompleteChallenge godoc
// @Summary Complete an assigned challenge and collect its points
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Param challengeId path int true "Challenge ID"
// @Success 200 {object} service.ChallengeResult
// @Failure 404 {object} errorPayload
// @Router /gamification/challenges/{challengeId}/complete [put]
func CompleteChallenge(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "challengeId")
		if !ok {
			return invalidID(c)
		}
		res, err := svc.CompleteChallenge(c.UserContext(), currentUser(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// Leaderboard godoc
// @Summary Ranking by points
// @Tags gamification
// @Produce json
// @Param type path string false "global, weekly, by_sport or by_location"
// @Param sport_id query int false "Sport, for by_sport"
// @Param location_id query int false "Location, for by_location"
// @Param limit query int false "Entries" default(10)
// @Success 200 {array} model.LeaderboardEntry
// @Failure 400 {object} errorPayload
// @Router /gamification/leaderboard/{type} [get]
func Leaderboard(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := c.Params("type", model.LeaderboardGlobal)

		var scope int64
		var ok bool
		switch kind {
		case model.LeaderboardBySport:
			scope, ok = queryInt64(c, "sport_id")
			if !ok {
				return invalidQuery(c, "sport_id")
			}
		case model.LeaderboardByLocation:
			scope, ok = queryInt64(c, "location_id")
			if !ok {
				return invalidQuery(c, "location_id")
			}
		}
		limit, ok := queryInt(c, "limit", 10)
		if !ok {
			return invalidQuery(c, "limit")
		}

		list, err := svc.Leaderboard(c.UserContext(), kind, scope, limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(list)
	}
}

// ListRewards godoc
// @Summary Reward catalog ordered by cost
// @Tags gamification
// @Produce json
// @Success 200 {array} model.Reward
// @Router /gamification/rewards [get]
func ListRewards(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rewards, err := svc.Rewards(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rewards)
	}
}

// PurchaseReward godoc
// @Summary Redeem points for a reward
// @Tags gamification
// @Security BearerAuth
// @Produce json
// @Param rewardId path int true "Reward ID"
// @Success 200 {object} purchaseResponse
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /gamification/rewards/{rewardId}/purchase [post]
func PurchaseReward(svc service.GamificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := int64Param(c, "rewardId")
		if !ok {
			return invalidID(c)
		}
		left, err := svc.Redeem(c.UserContext(), currentUser(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(purchaseResponse{Message: "reward purchased", RemainingPoints: left})
	}
}
