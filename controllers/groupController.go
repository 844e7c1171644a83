package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoelGroups/models"
	"github.com/GoelGroups/services"
)

// respondServiceError maps the service error taxonomy onto HTTP
// statuses. Anything outside the taxonomy is a store failure.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrGroupNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotMember),
		errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	default:
		log.Println(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

func groupIDParam(c *gin.Context) (int, bool) {
	groupID, err := strconv.Atoi(c.Param("group_profile_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group profile ID"})
		return 0, false
	}
	return groupID, true
}

func GetGroupDirectory(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	directory, err := services.GetPrayerGroupDirectory(currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": directory})
}

func GetGroupDetail(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}

	detail, err := services.GetPrayerGroupDetail(groupID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// JoinGroup runs the membership request state machine, then re-reads
// the detail projection so the caller renders fresh state. A full
// group is a 200 with capacityFull set, not an error.
func JoinGroup(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}

	result, err := services.RequestGroupMembership(groupID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	detail, err := services.GetPrayerGroupDetail(groupID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           result.Status,
		"requiresApproval": result.RequiresApproval,
		"capacityFull":     result.CapacityFull,
		"membership":       result.Membership,
		"detail":           detail,
	})
}

func LeaveGroup(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}

	result, err := services.LeaveGroupMembership(groupID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	detail, err := services.GetPrayerGroupDetail(groupID, currentUser.User_Profile_ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     result.Status,
		"membership": result.Membership,
		"detail":     detail,
	})
}

func UpdateNotificationPreference(c *gin.Context) {
	currentUser := c.MustGet("currentUser").(models.UserProfile)

	groupID, ok := groupIDParam(c)
	if !ok {
		return
	}

	var body struct {
		Preference models.NotificationPreference `json:"preference"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, err := services.UpdateNotificationPreference(groupID, currentUser.User_Profile_ID, body.Preference)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"membership": result.Membership})
}
