package services

import (
	"log"
	"time"

	"github.com/GoelGroups/initializers"
	"github.com/GoelGroups/models"

	"github.com/doug-martin/goqu/v9"
)

// GetPrayerGroupDirectory lists every group with the viewer's status,
// member and pending counts, facilitator names, and up to three active
// request previews. Pure read.
func GetPrayerGroupDirectory(viewerID int) ([]models.PrayerGroupSummary, error) {
	var groups []models.GroupProfile
	err := initializers.DB.From("group_profile").
		Order(goqu.I("last_activity_at").Desc()).
		ScanStructs(&groups)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	directory := make([]models.PrayerGroupSummary, 0, len(groups))
	for i := range groups {
		memberships, err := fetchMembershipRows(initializers.DB, groups[i].Group_Profile_ID)
		if err != nil {
			return nil, err
		}
		requests, err := fetchRequestRows(initializers.DB, groups[i].Group_Profile_ID, viewerID)
		if err != nil {
			return nil, err
		}
		directory = append(directory, buildSummary(&groups[i], memberships, requests, viewerID, now))
	}
	return directory, nil
}

// GetPrayerGroupDetail returns the full projection for one group:
// summary, viewer membership, active and archived requests (newest
// first, 30-day lazy archival applied), and the capacityFull flag.
// Visiting a group bumps the viewer's last_visited_at as a best-effort
// liveness marker; a failure there never fails the read.
func GetPrayerGroupDetail(groupID int, viewerID int) (*models.PrayerGroupDetail, error) {
	var group models.GroupProfile
	found, err := initializers.DB.From("group_profile").
		Where(goqu.C("group_profile_id").Eq(groupID)).
		ScanStruct(&group)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrGroupNotFound
	}

	memberships, err := fetchMembershipRows(initializers.DB, groupID)
	if err != nil {
		return nil, err
	}
	requests, err := fetchRequestRows(initializers.DB, groupID, viewerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	summary := buildSummary(&group, memberships, requests, viewerID, now)

	var viewerMembership *models.GroupMembership
	for i := range memberships {
		if memberships[i].User_Profile_ID == viewerID {
			viewerMembership = &memberships[i].GroupMembership
			break
		}
	}

	active := []models.PrayerRequestView{}
	archived := []models.PrayerRequestView{}
	for _, r := range requests {
		view := toRequestView(r, now)
		if view.Archived_At != nil {
			archived = append(archived, view)
		} else {
			active = append(active, view)
		}
	}

	if viewerMembership != nil {
		_, err := initializers.DB.Update("group_membership").
			Set(goqu.Record{"last_visited_at": now, "datetime_update": now}).
			Where(goqu.C("group_membership_id").Eq(viewerMembership.Group_Membership_ID)).
			Executor().Exec()
		if err != nil {
			log.Println("failed to record group visit:", err)
		} else {
			viewerMembership.Last_Visited_At = &now
		}
	}

	return &models.PrayerGroupDetail{
		Summary:          summary,
		Membership:       toMembershipView(viewerMembership),
		Requests:         active,
		ArchivedRequests: archived,
		CapacityFull:     summary.Member_Count >= group.Member_Limit,
	}, nil
}

// LookupUser resolves a user id to its directory entry. Display
// enrichment only; membership rows drive every authorization decision.
func LookupUser(userID int) (*models.UserDirectoryEntry, bool, error) {
	var entry models.UserDirectoryEntry
	found, err := initializers.DB.From("user_profile").
		Select("user_profile_id", "display_name", "user_role").
		Where(goqu.C("user_profile_id").Eq(userID)).
		ScanStruct(&entry)
	if err != nil || !found {
		return nil, found, err
	}
	return &entry, true, nil
}
