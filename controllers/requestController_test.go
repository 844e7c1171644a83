package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateGroupPrayerRequest(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "group_membership"`).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(5, 1, 42, "member", "member", "quiet", now, nil, now, now))
	mock.ExpectQuery(`INSERT INTO "prayer_request"`).
		WillReturnRows(sqlmock.NewRows([]string{"prayer_request_id"}).AddRow(55))
	mock.ExpectExec(`UPDATE "group_profile"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "group_membership"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM "user_profile"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_profile_id", "display_name", "user_role"}).
			AddRow(42, "Hannah R.", "Prayer Scribe"))
	mock.ExpectCommit()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{{Key: "group_profile_id", Value: "1"}}
	jsonRequest(c, "POST", `{"title":"Endurance for the night watch","reference":"Psalm 121"}`)

	CreateGroupPrayerRequest(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Endurance for the night watch"`)
	assert.Contains(t, w.Body.String(), `"displayName":"Hannah R."`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroupPrayerRequestTitleTooShort(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{{Key: "group_profile_id", Value: "1"}}
	jsonRequest(c, "POST", `{"title":"Us"}`)

	CreateGroupPrayerRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"title"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroupPrayerRequestNotMember(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "group_membership"`).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(5, 1, 42, "member", "pending", "quiet", nil, nil, now, now))
	mock.ExpectRollback()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{{Key: "group_profile_id", Value: "1"}}
	jsonRequest(c, "POST", `{"title":"Endurance for the night watch"}`)

	CreateGroupPrayerRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTogglePraying(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "group_membership"`).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(5, 1, 42, "member", "member", "quiet", now, nil, now, now))
	mock.ExpectQuery(`FROM "prayer_request"`).
		WillReturnRows(sqlmock.NewRows(prayerRequestColumns()).
			AddRow(33, 1, 1, "Cover the midnight hour", nil, nil, nil, now, now, now))
	mock.ExpectExec(`DELETE FROM "request_reaction"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "request_reaction"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(`UPDATE "prayer_request"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{
		{Key: "group_profile_id", Value: "1"},
		{Key: "prayer_request_id", Value: "33"},
	}

	TogglePraying(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"prayingCount":3`)
	assert.Contains(t, w.Body.String(), `"viewerHasPrayed":true`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTogglePrayingRequestNotFound(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "group_membership"`).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(5, 1, 42, "member", "member", "quiet", now, nil, now, now))
	mock.ExpectQuery(`FROM "prayer_request"`).
		WillReturnRows(sqlmock.NewRows(prayerRequestColumns()))
	mock.ExpectRollback()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{
		{Key: "group_profile_id", Value: "1"},
		{Key: "prayer_request_id", Value: "99"},
	}

	TogglePraying(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveGroupPrayerRequestForbidden(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "group_membership"`).
		WillReturnRows(sqlmock.NewRows(membershipColumns()).
			AddRow(5, 1, 42, "member", "member", "quiet", now, nil, now, now))
	// authored by someone else and the caller holds no facilitator role
	mock.ExpectQuery(`FROM "prayer_request"`).
		WillReturnRows(sqlmock.NewRows(prayerRequestColumns()).
			AddRow(33, 1, 8, "Cover the midnight hour", nil, nil, nil, now, now, now))
	mock.ExpectRollback()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{
		{Key: "group_profile_id", Value: "1"},
		{Key: "prayer_request_id", Value: "33"},
	}

	ArchiveGroupPrayerRequest(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveGroupPrayerRequestInvalidRequestID(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser(), false)
	c.Params = gin.Params{
		{Key: "group_profile_id", Value: "1"},
		{Key: "prayer_request_id", Value: "abc"},
	}

	ArchiveGroupPrayerRequest(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid prayer request ID")
	assert.NoError(t, mock.ExpectationsWereMet())
}
