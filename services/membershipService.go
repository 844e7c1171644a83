package services

import (
	"time"

	"github.com/GoelGroups/initializers"
	"github.com/GoelGroups/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

func fetchMembership(db queryer, groupID int, userID int) (*models.GroupMembership, error) {
	var membership models.GroupMembership
	found, err := db.From("group_membership").
		Where(goqu.Ex{
			"group_profile_id": groupID,
			"user_profile_id":  userID,
		}).
		ScanStruct(&membership)
	if err != nil || !found {
		return nil, err
	}
	return &membership, nil
}

func countActiveMembers(db queryer, groupID int) (int64, error) {
	return db.From("group_membership").
		Where(goqu.Ex{
			"group_profile_id": groupID,
			"status":           string(models.StatusMember),
		}).
		Count()
}

func touchGroupActivity(db queryer, groupID int, now time.Time) error {
	_, err := db.Update("group_profile").
		Set(goqu.Record{"last_activity_at": now, "datetime_update": now}).
		Where(goqu.C("group_profile_id").Eq(groupID)).
		Executor().Exec()
	return err
}

// RequestGroupMembership runs the join state machine for one user as a
// single transaction. The group row is locked for the duration so the
// capacity check and the membership write cannot race a concurrent
// join against the last open slot.
//
// Existing members are a no-op. A full group turns the caller away with
// the capacityFull flag and no mutation. Private groups park the caller
// at pending without occupying a capacity slot; public groups admit
// immediately. Suspended and pending rows are reactivated in place, so
// a rejoin keeps its original role and joinedAt.
func RequestGroupMembership(groupID int, userID int) (*models.JoinGroupResult, error) {
	tx, err := initializers.DB.Begin()
	if err != nil {
		return nil, err
	}

	var result *models.JoinGroupResult
	err = tx.Wrap(func() error {
		var group models.GroupProfile
		found, err := tx.From("group_profile").
			Where(goqu.C("group_profile_id").Eq(groupID)).
			ForUpdate(exp.Wait).
			ScanStruct(&group)
		if err != nil {
			return err
		}
		if !found {
			return ErrGroupNotFound
		}

		existing, err := fetchMembership(tx, groupID, userID)
		if err != nil {
			return err
		}

		memberCount, err := countActiveMembers(tx, groupID)
		if err != nil {
			return err
		}
		capacityFull := memberCount >= int64(group.Member_Limit)

		if existing != nil && existing.Status == models.StatusMember {
			view := toMembershipView(existing)
			result = &models.JoinGroupResult{
				Status:           models.ViewerMember,
				RequiresApproval: false,
				CapacityFull:     capacityFull,
				Membership:       &view,
			}
			return nil
		}

		if capacityFull {
			result = &models.JoinGroupResult{
				Status:           existing.ViewerStatus(),
				RequiresApproval: false,
				CapacityFull:     true,
			}
			if existing != nil {
				view := toMembershipView(existing)
				result.Membership = &view
			}
			return nil
		}

		now := time.Now()

		if group.Is_Private {
			if existing != nil {
				if existing.Status != models.StatusPending {
					_, err := tx.Update("group_membership").
						Set(goqu.Record{
							"status":          string(models.StatusPending),
							"datetime_update": now,
						}).
						Where(goqu.C("group_membership_id").Eq(existing.Group_Membership_ID)).
						Executor().Exec()
					if err != nil {
						return err
					}
					existing.Status = models.StatusPending
				}
				view := toMembershipView(existing)
				result = &models.JoinGroupResult{
					Status:           models.ViewerPending,
					RequiresApproval: true,
					Membership:       &view,
				}
				return nil
			}

			membership := models.GroupMembership{
				Group_Profile_ID: groupID,
				User_Profile_ID:  userID,
				Role:             models.RoleMember,
				Status:           models.StatusPending,
				Notifications:    models.NotifyQuiet,
			}
			var insertedID int
			_, err := tx.Insert("group_membership").
				Rows(membership).
				Returning("group_membership_id").
				Executor().ScanVal(&insertedID)
			if err != nil {
				return err
			}
			membership.Group_Membership_ID = insertedID

			view := toMembershipView(&membership)
			result = &models.JoinGroupResult{
				Status:           models.ViewerPending,
				RequiresApproval: true,
				Membership:       &view,
			}
			return nil
		}

		// Public group: admit immediately.
		var membership models.GroupMembership
		if existing != nil {
			record := goqu.Record{
				"status":          string(models.StatusMember),
				"datetime_update": now,
			}
			if existing.Joined_At == nil {
				record["joined_at"] = now
				existing.Joined_At = &now
			}
			_, err := tx.Update("group_membership").
				Set(record).
				Where(goqu.C("group_membership_id").Eq(existing.Group_Membership_ID)).
				Executor().Exec()
			if err != nil {
				return err
			}
			existing.Status = models.StatusMember
			membership = *existing
		} else {
			membership = models.GroupMembership{
				Group_Profile_ID: groupID,
				User_Profile_ID:  userID,
				Role:             models.RoleMember,
				Status:           models.StatusMember,
				Notifications:    models.NotifyQuiet,
				Joined_At:        &now,
			}
			var insertedID int
			_, err := tx.Insert("group_membership").
				Rows(membership).
				Returning("group_membership_id").
				Executor().ScanVal(&insertedID)
			if err != nil {
				return err
			}
			membership.Group_Membership_ID = insertedID
		}

		if err := touchGroupActivity(tx, groupID, now); err != nil {
			return err
		}

		view := toMembershipView(&membership)
		result = &models.JoinGroupResult{
			Status:     models.ViewerMember,
			Membership: &view,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// LeaveGroupMembership suspends the caller's membership instead of
// deleting it, so the row survives for a later rejoin. Notifications
// drop back to quiet on the way out. Leaving a group you were never in
// is a harmless no-op.
func LeaveGroupMembership(groupID int, userID int) (*models.LeaveGroupResult, error) {
	tx, err := initializers.DB.Begin()
	if err != nil {
		return nil, err
	}

	var result *models.LeaveGroupResult
	err = tx.Wrap(func() error {
		existing, err := fetchMembership(tx, groupID, userID)
		if err != nil {
			return err
		}
		if existing == nil {
			result = &models.LeaveGroupResult{Status: models.ViewerGuest}
			return nil
		}

		now := time.Now()
		_, err = tx.Update("group_membership").
			Set(goqu.Record{
				"status":          string(models.StatusSuspended),
				"notifications":   string(models.NotifyQuiet),
				"last_visited_at": now,
				"datetime_update": now,
			}).
			Where(goqu.C("group_membership_id").Eq(existing.Group_Membership_ID)).
			Executor().Exec()
		if err != nil {
			return err
		}
		if err := touchGroupActivity(tx, groupID, now); err != nil {
			return err
		}

		existing.Status = models.StatusSuspended
		existing.Notifications = models.NotifyQuiet
		existing.Last_Visited_At = &now
		view := toMembershipView(existing)
		result = &models.LeaveGroupResult{
			Status:     models.ViewerSuspended,
			Membership: &view,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateNotificationPreference changes how a member hears about group
// activity. Only active members may change it.
func UpdateNotificationPreference(groupID int, userID int, pref models.NotificationPreference) (*models.NotificationPreferenceResult, error) {
	if !pref.Valid() {
		return nil, &ValidationError{
			Field:   "preference",
			Message: "Notification preference must be all, quiet, or mentions.",
		}
	}

	membership, err := fetchMembership(initializers.DB, groupID, userID)
	if err != nil {
		return nil, err
	}
	if membership == nil || membership.Status != models.StatusMember {
		return nil, ErrNotMember
	}

	now := time.Now()
	_, err = initializers.DB.Update("group_membership").
		Set(goqu.Record{
			"notifications":   string(pref),
			"last_visited_at": now,
			"datetime_update": now,
		}).
		Where(goqu.C("group_membership_id").Eq(membership.Group_Membership_ID)).
		Executor().Exec()
	if err != nil {
		return nil, err
	}

	membership.Notifications = pref
	membership.Last_Visited_At = &now
	return &models.NotificationPreferenceResult{Membership: toMembershipView(membership)}, nil
}
