package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GoelGroups/initializers"
	"github.com/GoelGroups/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	titleMinLength     = 4
	titleMaxLength     = 220
	bodyMaxLength      = 500
	referenceMaxLength = 80
)

func fetchRequestRow(db queryer, groupID int, requestID int, viewerID int) (*requestRow, error) {
	var row requestRow
	found, err := db.From("prayer_request").
		Select(
			goqu.I("prayer_request.*"),
			goqu.I("user_profile.display_name").As("author_name"),
			goqu.I("user_profile.user_role").As("author_role"),
			goqu.L("(SELECT COUNT(*) FROM request_reaction WHERE request_reaction.prayer_request_id = prayer_request.prayer_request_id)").As("praying_count"),
			goqu.L("EXISTS (SELECT 1 FROM request_reaction WHERE request_reaction.prayer_request_id = prayer_request.prayer_request_id AND request_reaction.user_profile_id = ?)", viewerID).As("viewer_has_prayed"),
		).
		InnerJoin(
			goqu.T("user_profile"),
			goqu.On(goqu.Ex{"prayer_request.author_id": goqu.I("user_profile.user_profile_id")}),
		).
		Where(
			goqu.C("prayer_request_id").Table("prayer_request").Eq(requestID),
			goqu.C("group_profile_id").Table("prayer_request").Eq(groupID),
		).
		ScanStruct(&row)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRequestNotFound
	}
	return &row, nil
}

func trimOptional(value string, maxLength int, field string, message string) (*string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(trimmed) > maxLength {
		return nil, &ValidationError{Field: field, Message: message}
	}
	return &trimmed, nil
}

// CreatePrayerRequest records a new request for a group. Only active
// members can share; titles must carry between 4 and 220 characters
// after trimming, and empty optional fields are stored as NULL.
func CreatePrayerRequest(groupID int, userID int, input models.PrayerRequestCreate) (*models.PrayerRequestView, error) {
	title := strings.TrimSpace(input.Title)
	if utf8.RuneCountInString(title) < titleMinLength {
		return nil, &ValidationError{
			Field:   "title",
			Message: "Please provide a little more detail for this request.",
		}
	}
	if utf8.RuneCountInString(title) > titleMaxLength {
		return nil, &ValidationError{
			Field:   "title",
			Message: "Prayer request titles should remain under 220 characters.",
		}
	}
	body, err := trimOptional(input.Body, bodyMaxLength, "body", "Prayer request details should remain under 500 characters.")
	if err != nil {
		return nil, err
	}
	reference, err := trimOptional(input.Reference, referenceMaxLength, "reference", "Scripture references should remain under 80 characters.")
	if err != nil {
		return nil, err
	}

	tx, txErr := initializers.DB.Begin()
	if txErr != nil {
		return nil, txErr
	}

	var view *models.PrayerRequestView
	txErr = tx.Wrap(func() error {
		membership, err := fetchMembership(tx, groupID, userID)
		if err != nil {
			return err
		}
		if membership == nil || membership.Status != models.StatusMember {
			return ErrNotMember
		}

		now := time.Now()
		request := models.PrayerRequest{
			Group_Profile_ID: groupID,
			Author_ID:        userID,
			Title:            title,
			Body:             body,
			Reference:        reference,
			Last_Activity_At: now,
		}
		var insertedID int
		_, err = tx.Insert("prayer_request").
			Rows(request).
			Returning("prayer_request_id").
			Executor().ScanVal(&insertedID)
		if err != nil {
			return err
		}
		request.Prayer_Request_ID = insertedID
		request.Datetime_Create = now

		if err := touchGroupActivity(tx, groupID, now); err != nil {
			return err
		}
		_, err = tx.Update("group_membership").
			Set(goqu.Record{"last_visited_at": now, "datetime_update": now}).
			Where(goqu.C("group_membership_id").Eq(membership.Group_Membership_ID)).
			Executor().Exec()
		if err != nil {
			return err
		}

		var author models.UserDirectoryEntry
		_, err = tx.From("user_profile").
			Select("user_profile_id", "display_name", "user_role").
			Where(goqu.C("user_profile_id").Eq(userID)).
			ScanStruct(&author)
		if err != nil {
			return err
		}

		view = &models.PrayerRequestView{
			Prayer_Request_ID: request.Prayer_Request_ID,
			Title:             request.Title,
			Body:              request.Body,
			Reference:         request.Reference,
			Created_At:        request.Datetime_Create,
			Author: models.RequestAuthorView{
				User_Profile_ID: userID,
				Display_Name:    author.Display_Name,
				User_Role:       author.User_Role,
			},
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return view, nil
}

// TogglePrayerReaction flips the caller's "praying" acknowledgment on a
// request. The request row is locked while the reaction row is removed
// or added, so concurrent toggles from different users serialize and
// the derived count never drifts from the reaction rows.
func TogglePrayerReaction(groupID int, requestID int, userID int) (*models.TogglePrayerReactionResult, error) {
	tx, err := initializers.DB.Begin()
	if err != nil {
		return nil, err
	}

	var result *models.TogglePrayerReactionResult
	err = tx.Wrap(func() error {
		membership, err := fetchMembership(tx, groupID, userID)
		if err != nil {
			return err
		}
		if membership == nil || membership.Status != models.StatusMember {
			return ErrNotMember
		}

		var request models.PrayerRequest
		found, err := tx.From("prayer_request").
			Where(goqu.Ex{
				"prayer_request_id": requestID,
				"group_profile_id":  groupID,
			}).
			ForUpdate(exp.Wait).
			ScanStruct(&request)
		if err != nil {
			return err
		}
		if !found {
			return ErrRequestNotFound
		}

		res, err := tx.Delete("request_reaction").
			Where(goqu.Ex{
				"prayer_request_id": requestID,
				"user_profile_id":   userID,
			}).
			Executor().Exec()
		if err != nil {
			return err
		}
		removed, err := res.RowsAffected()
		if err != nil {
			return err
		}

		viewerHasPrayed := false
		if removed == 0 {
			reaction := models.RequestReaction{
				Prayer_Request_ID: requestID,
				User_Profile_ID:   userID,
			}
			_, err := tx.Insert("request_reaction").Rows(reaction).Executor().Exec()
			if err != nil {
				return err
			}
			viewerHasPrayed = true
		}

		count, err := tx.From("request_reaction").
			Where(goqu.C("prayer_request_id").Eq(requestID)).
			Count()
		if err != nil {
			return err
		}

		now := time.Now()
		_, err = tx.Update("prayer_request").
			Set(goqu.Record{"last_activity_at": now, "datetime_update": now}).
			Where(goqu.C("prayer_request_id").Eq(requestID)).
			Executor().Exec()
		if err != nil {
			return err
		}

		result = &models.TogglePrayerReactionResult{
			Praying_Count:     int(count),
			Viewer_Has_Prayed: viewerHasPrayed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ArchivePrayerRequest closes out a request. The author may archive
// their own; facilitators and owners may archive anyone's. Requests
// already archived are returned unchanged, and a request past the
// 30-day window archives at the window boundary rather than at the
// time of the call.
func ArchivePrayerRequest(groupID int, requestID int, userID int) (*models.PrayerRequestView, error) {
	tx, err := initializers.DB.Begin()
	if err != nil {
		return nil, err
	}

	var view *models.PrayerRequestView
	err = tx.Wrap(func() error {
		membership, err := fetchMembership(tx, groupID, userID)
		if err != nil {
			return err
		}
		if membership == nil || membership.Status != models.StatusMember {
			return ErrNotMember
		}

		var request models.PrayerRequest
		found, err := tx.From("prayer_request").
			Where(goqu.Ex{
				"prayer_request_id": requestID,
				"group_profile_id":  groupID,
			}).
			ForUpdate(exp.Wait).
			ScanStruct(&request)
		if err != nil {
			return err
		}
		if !found {
			return ErrRequestNotFound
		}

		if request.Author_ID != userID && !membership.Role.CanArchive() {
			return ErrForbidden
		}

		if request.Archived_At == nil {
			now := time.Now()
			archivedAt := effectiveArchivedAt(&request, now)
			if archivedAt == nil {
				archivedAt = &now
			}
			_, err := tx.Update("prayer_request").
				Set(goqu.Record{
					"archived_at":      *archivedAt,
					"last_activity_at": now,
					"datetime_update":  now,
				}).
				Where(goqu.C("prayer_request_id").Eq(requestID)).
				Executor().Exec()
			if err != nil {
				return err
			}
			if err := touchGroupActivity(tx, groupID, now); err != nil {
				return err
			}
		}

		row, err := fetchRequestRow(tx, groupID, requestID, userID)
		if err != nil {
			return err
		}
		requestView := toRequestView(*row, time.Now())
		view = &requestView
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
