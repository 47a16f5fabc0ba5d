package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a chat message about a trip
// @Description Run one conversational turn; the reply may carry an itinerary patch
// @Tags Chat
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.TripChatRequest true "Chat message payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/chat [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.TripChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	reply, err := ch.chatService.SendMessage(c.Request.Context(), tripId, userId, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Message processed successfully")
}

// ApplyPatch godoc
// @Summary Apply an itinerary patch
// @Description Apply a patch previously proposed in chat to the trip's day plan
// @Tags Chat
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.ApplyPatchRequest true "Patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/chat/apply [post]
func (ch *ChatController) ApplyPatch(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.ApplyPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId := c.GetString("user_id")

	trip, err := ch.chatService.ApplyPatch(c.Request.Context(), tripId, userId, req.Patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Itinerary updated successfully")
}

// GetHistory godoc
// @Summary Get chat history for a trip
// @Description Fetch the recent chat messages in chronological order
// @Tags Chat
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/chat [get]
func (ch *ChatController) GetHistory(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	userId := c.GetString("user_id")

	msgs, err := ch.chatService.GetHistory(c.Request.Context(), tripId, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, msgs, "Chat history fetched successfully")
}
