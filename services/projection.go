package services

import (
	"time"

	"github.com/GoelGroups/models"

	"github.com/doug-martin/goqu/v9"
)

// Requests older than this are treated as archived on read; no
// background sweep exists or is needed.
const archiveAfter = 30 * 24 * time.Hour

const previewRequestLimit = 3

// queryer is satisfied by both *goqu.Database and *goqu.TxDatabase so
// the projection helpers can run inside or outside a transaction.
type queryer interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

type membershipRow struct {
	models.GroupMembership
	Display_Name string `db:"display_name"`
}

type requestRow struct {
	models.PrayerRequest
	Author_Name       string  `db:"author_name"`
	Author_Role       *string `db:"author_role"`
	Praying_Count     int     `db:"praying_count"`
	Viewer_Has_Prayed bool    `db:"viewer_has_prayed"`
}

// effectiveArchivedAt resolves the archival timestamp a request should
// display at the given instant. Unarchived requests past the 30-day
// window project a synthetic timestamp of createdAt + 30 days.
func effectiveArchivedAt(request *models.PrayerRequest, now time.Time) *time.Time {
	if request.Archived_At != nil {
		return request.Archived_At
	}
	if now.Sub(request.Datetime_Create) >= archiveAfter {
		cutoff := request.Datetime_Create.Add(archiveAfter)
		return &cutoff
	}
	return nil
}

func toMembershipView(membership *models.GroupMembership) models.GroupMembershipView {
	if membership == nil {
		return models.GroupMembershipView{
			Status:        models.ViewerGuest,
			Role:          models.RoleMember,
			Notifications: models.NotifyQuiet,
		}
	}
	return models.GroupMembershipView{
		Group_Membership_ID: membership.Group_Membership_ID,
		Status:              membership.ViewerStatus(),
		Role:                membership.Role,
		Notifications:       membership.Notifications,
		Joined_At:           membership.Joined_At,
		Last_Visited_At:     membership.Last_Visited_At,
	}
}

func toRequestView(row requestRow, now time.Time) models.PrayerRequestView {
	return models.PrayerRequestView{
		Prayer_Request_ID: row.Prayer_Request_ID,
		Title:             row.Title,
		Body:              row.Body,
		Reference:         row.Reference,
		Created_At:        row.Datetime_Create,
		Archived_At:       effectiveArchivedAt(&row.PrayerRequest, now),
		Author: models.RequestAuthorView{
			User_Profile_ID: row.Author_ID,
			Display_Name:    row.Author_Name,
			User_Role:       row.Author_Role,
		},
		Praying_Count:     row.Praying_Count,
		Viewer_Has_Prayed: row.Viewer_Has_Prayed,
	}
}

func fetchMembershipRows(db queryer, groupID int) ([]membershipRow, error) {
	var rows []membershipRow
	err := db.From("group_membership").
		Select(
			goqu.I("group_membership.*"),
			goqu.I("user_profile.display_name"),
		).
		InnerJoin(
			goqu.T("user_profile"),
			goqu.On(goqu.Ex{"group_membership.user_profile_id": goqu.I("user_profile.user_profile_id")}),
		).
		Where(goqu.C("group_profile_id").Table("group_membership").Eq(groupID)).
		ScanStructs(&rows)
	return rows, err
}

func fetchRequestRows(db queryer, groupID int, viewerID int) ([]requestRow, error) {
	var rows []requestRow
	err := db.From("prayer_request").
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
		Where(goqu.C("group_profile_id").Table("prayer_request").Eq(groupID)).
		Order(goqu.I("prayer_request.datetime_create").Desc()).
		ScanStructs(&rows)
	return rows, err
}

// buildSummary assembles the directory card for one group from its
// membership and request rows. Pending memberships never count toward
// capacity; only status=member occupies a slot.
func buildSummary(
	group *models.GroupProfile,
	memberships []membershipRow,
	requests []requestRow,
	viewerID int,
	now time.Time,
) models.PrayerGroupSummary {
	memberCount := 0
	pendingCount := 0
	viewerStatus := models.ViewerGuest
	facilitators := []models.FacilitatorView{}

	for _, m := range memberships {
		switch m.Status {
		case models.StatusMember:
			memberCount++
		case models.StatusPending:
			pendingCount++
		}
		if m.User_Profile_ID == viewerID {
			viewerStatus = m.ViewerStatus()
		}
		if m.Status == models.StatusMember && m.Role != models.RoleMember {
			facilitators = append(facilitators, models.FacilitatorView{
				User_Profile_ID: m.User_Profile_ID,
				Display_Name:    m.Display_Name,
			})
		}
	}

	previews := []models.PrayerRequestPreview{}
	for _, r := range requests {
		if effectiveArchivedAt(&r.PrayerRequest, now) != nil {
			continue
		}
		previews = append(previews, models.PrayerRequestPreview{
			Prayer_Request_ID: r.Prayer_Request_ID,
			Title:             r.Title,
			Created_At:        r.Datetime_Create,
			Praying_Count:     r.Praying_Count,
			Author_Name:       r.Author_Name,
		})
		if len(previews) == previewRequestLimit {
			break
		}
	}

	return models.PrayerGroupSummary{
		Group_Profile_ID: group.Group_Profile_ID,
		Group_Name:       group.Group_Name,
		Focus:            group.Focus,
		Scripture_Anchor: group.Scripture_Anchor,
		Description:      group.Description,
		Member_Count:     memberCount,
		Member_Limit:     group.Member_Limit,
		Pending_Count:    pendingCount,
		Viewer_Status:    viewerStatus,
		Is_Private:       group.Is_Private,
		Tags:             []string(group.Tags),
		Last_Activity_At: group.Last_Activity_At,
		Facilitators:     facilitators,
		Preview_Requests: previews,
	}
}
