package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type SocialController struct {
	socialService services.SocialServiceInterface
}

func NewSocialController(socialService services.SocialServiceInterface) *SocialController {
	return &SocialController{
		socialService: socialService,
	}
}

// ToggleLike godoc
// @Summary Like or unlike a trip
// @Description Toggle the caller's like on a trip and return the new state
// @Tags Social
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/like [post]
func (s *SocialController) ToggleLike(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	liked, err := s.socialService.ToggleLike(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"liked": liked}, "Like toggled successfully")
}

// AddComment godoc
// @Summary Comment on a trip
// @Description Add a comment to a trip visible to the caller
// @Tags Social
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddCommentRequest true "Comment payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/comments [post]
func (s *SocialController) AddComment(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	comment, err := s.socialService.AddComment(c.Request.Context(), tripId, userId, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment added successfully")
}

// ListComments godoc
// @Summary List comments on a trip
// @Description Fetch a paginated list of comments, newest first
// @Tags Social
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /trips/{tripId}/comments [get]
func (s *SocialController) ListComments(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	page, pageSize, ok := parsePaging(c)
	if !ok {
		return
	}

	comments, err := s.socialService.ListComments(c.Request.Context(), tripId, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

// Follow godoc
// @Summary Follow an account
// @Description Follow an account; private accounts leave the request pending
// @Tags Social
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID to follow"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{accountId}/follow [post]
func (s *SocialController) Follow(c *gin.Context) {
	accountId := c.Param("accountId")
	if accountId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	userId := c.GetString("user_id")

	status, err := s.socialService.Follow(c.Request.Context(), userId, accountId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"status": status}, "Follow request processed successfully")
}

// Unfollow godoc
// @Summary Unfollow an account
// @Description Remove the caller's follow edge or pending request
// @Tags Social
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID to unfollow"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/{accountId}/follow [delete]
func (s *SocialController) Unfollow(c *gin.Context) {
	accountId := c.Param("accountId")
	if accountId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := s.socialService.Unfollow(c.Request.Context(), userId, accountId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Unfollowed successfully")
}

// ListFollowRequests godoc
// @Summary List pending follow requests
// @Description Fetch follow requests waiting on the authenticated user
// @Tags Social
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follow-requests [get]
func (s *SocialController) ListFollowRequests(c *gin.Context) {
	userId := c.GetString("user_id")

	requests, err := s.socialService.ListFollowRequests(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Follow requests fetched successfully")
}

// AcceptFollowRequest godoc
// @Summary Accept a follow request
// @Description Accept a pending follow request from the given account
// @Tags Social
// @Accept json
// @Produce json
// @Param accountId path string true "Follower account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /follow-requests/{accountId}/accept [post]
func (s *SocialController) AcceptFollowRequest(c *gin.Context) {
	accountId := c.Param("accountId")
	if accountId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Account ID is required")
		return
	}

	userId := c.GetString("user_id")

	if err := s.socialService.AcceptFollowRequest(c.Request.Context(), userId, accountId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Follow request accepted successfully")
}
