package controllers

import (
	"database/sql/driver"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type driverValue = driver.Value

func jsonRequest(c *gin.Context, method string, body string) {
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func userProfileColumns() []string {
	return []string{
		"user_profile_id", "username", "password", "display_name", "email",
		"user_role", "admin", "datetime_create", "datetime_update",
	}
}

func groupProfileColumns() []string {
	return []string{
		"group_profile_id", "group_name", "focus", "scripture_anchor", "description",
		"owner_id", "member_limit", "is_private", "tags", "last_activity_at",
		"datetime_create", "datetime_update",
	}
}

func gatewatchRow(memberLimit int, isPrivate bool) []driverValue {
	now := time.Now()
	return []driverValue{
		1, "Gatewatch Intercessors", "Night watch prayer covering global cities.",
		"Isaiah 62:6-7", "Interceding nightly for awakening in global cities.",
		1, memberLimit, isPrivate, "{Intercession,Cities}", now, now.AddDate(0, 0, -14), now,
	}
}

func membershipColumns() []string {
	return []string{
		"group_membership_id", "group_profile_id", "user_profile_id", "role", "status",
		"notifications", "joined_at", "last_visited_at", "datetime_create", "datetime_update",
	}
}

func membershipJoinColumns() []string {
	return append(membershipColumns(), "display_name")
}

func prayerRequestColumns() []string {
	return []string{
		"prayer_request_id", "group_profile_id", "author_id", "title", "body", "reference",
		"archived_at", "last_activity_at", "datetime_create", "datetime_update",
	}
}

func requestJoinColumns() []string {
	return append(prayerRequestColumns(),
		"author_name", "author_role", "praying_count", "viewer_has_prayed")
}
