package services

import (
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/GoelGroups/initializers"
	"github.com/doug-martin/goqu/v9"
)

// setupTestDB creates a mock database and sets it as the global DB for testing
func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	goquDB := goqu.New("postgres", db)

	// Store original DB to restore after test
	originalDB := initializers.DB
	initializers.DB = goquDB

	cleanup := func() {
		db.Close()
		initializers.DB = originalDB
	}

	return db, mock, cleanup
}

func groupProfileColumns() []string {
	return []string{
		"group_profile_id", "group_name", "focus", "scripture_anchor", "description",
		"owner_id", "member_limit", "is_private", "tags", "last_activity_at",
		"datetime_create", "datetime_update",
	}
}

// gatewatchRow returns the seed-style "Gatewatch Intercessors" group with
// a configurable capacity and privacy flag.
func gatewatchRow(memberLimit int, isPrivate bool) []driverValue {
	now := time.Now()
	return []driverValue{
		1, "Gatewatch Intercessors", "Night watch prayer covering global cities.",
		"Isaiah 62:6-7", "Interceding nightly for awakening in global cities.",
		1, memberLimit, isPrivate, "{Intercession,Cities}", now, now.AddDate(0, 0, -14), now,
	}
}

type driverValue = driver.Value

func membershipColumns() []string {
	return []string{
		"group_membership_id", "group_profile_id", "user_profile_id", "role", "status",
		"notifications", "joined_at", "last_visited_at", "datetime_create", "datetime_update",
	}
}

func membershipJoinColumns() []string {
	return append(membershipColumns(), "display_name")
}

func membershipRowValues(id int, groupID int, userID int, role string, status string, joinedAt interface{}) []driverValue {
	now := time.Now()
	return []driverValue{id, groupID, userID, role, status, "quiet", joinedAt, nil, now, now}
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

func countRows(count int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(count)
}
