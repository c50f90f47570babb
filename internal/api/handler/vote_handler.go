package handler

import (
	"Faceoff/internal/api/dto"
	"Faceoff/internal/api/middleware"
	"Faceoff/internal/pkg/geo"
	"Faceoff/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteSvc service.VoteService
	geo     *geo.Client
}

func NewVoteHandler(voteSvc service.VoteService, geoClient *geo.Client) *VoteHandler {
	return &VoteHandler{
		voteSvc: voteSvc,
		geo:     geoClient,
	}
}

// Submit 提交一次对战投票
func (s *VoteHandler) Submit(c *gin.Context) {
	var req dto.VoteCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.VoteErrorDTO{Error: "Missing required fields"})
		return
	}

	sub := &service.VoteSubmission{
		WinnerID:  req.WinnerID,
		LoserID:   req.LoserID,
		Category:  req.Category,
		SessionID: req.SessionID,
		CallerID:  middleware.CallerID(c),
		Country:   s.geo.CountryByIP(c.Request.Context(), c.ClientIP()),
	}

	voteID, err := s.voteSvc.SubmitVote(c.Request.Context(), sub)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, dto.VoteErrorDTO{Error: "Missing required fields"})
		case errors.Is(err, service.ErrDuplicateVote):
			c.JSON(http.StatusConflict, dto.VoteErrorDTO{
				Error:   "Duplicate vote detected",
				Message: "The same pair was voted on moments ago",
			})
		default:
			c.JSON(http.StatusInternalServerError, dto.VoteErrorDTO{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.VoteResultDTO{
		Success: true,
		VoteID:  voteID,
		Message: "Vote recorded",
	})
}
