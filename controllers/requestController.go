package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoelGroups/models"
	"github.com/GoelGroups/services"
)

func requestIDParam(c *gin.Context) (int, bool) {
	requestID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return 0, false
	}
	return requestID, true
}

func CreateGroupPrayerRequest(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}

	var input models.PrayerRequestCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	view, err := services.CreatePrayerRequest(groupID, currentUser.User_Profile_ID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func TogglePraying(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	result, err := services.TogglePrayerReaction(groupID, requestID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func ArchiveGroupPrayerRequest(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}
	requestID, ok := requestIDParam(c)
	if !ok {
		return
	}

	view, err := services.ArchivePrayerRequest(groupID, requestID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}
