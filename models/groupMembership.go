package models

import "time"

// MembershipStatus is the persisted state of a (group, user) pair.
// "guest" is never stored; the absence of a row is guest.
type MembershipStatus string

const (
	StatusPending   MembershipStatus = "pending"
	StatusMember    MembershipStatus = "member"
	StatusSuspended MembershipStatus = "suspended"
)

// ViewerGroupStatus is the derived status shown to a viewer,
// including the guest case for users with no membership row.
type ViewerGroupStatus string

const (
	ViewerGuest     ViewerGroupStatus = "guest"
	ViewerPending   ViewerGroupStatus = "pending"
	ViewerMember    ViewerGroupStatus = "member"
	ViewerSuspended ViewerGroupStatus = "suspended"
)

type GroupRole string

const (
	RoleOwner       GroupRole = "owner"
	RoleFacilitator GroupRole = "facilitator"
	RoleMember      GroupRole = "member"
)

type NotificationPreference string

const (
	NotifyAll      NotificationPreference = "all"
	NotifyQuiet    NotificationPreference = "quiet"
	NotifyMentions NotificationPreference = "mentions"
)

func (p NotificationPreference) Valid() bool {
	switch p {
	case NotifyAll, NotifyQuiet, NotifyMentions:
		return true
	}
	return false
}

// CanArchive reports whether the role alone grants archival rights.
// Authors may always archive their own requests regardless of role.
func (r GroupRole) CanArchive() bool {
	return r == RoleOwner || r == RoleFacilitator
}

type GroupMembership struct {
	Group_Membership_ID int                    `json:"groupMembershipId" goqu:"skipinsert"`
	Group_Profile_ID    int                    `json:"groupId"`
	User_Profile_ID     int                    `json:"userId"`
	Role                GroupRole              `json:"role"`
	Status              MembershipStatus       `json:"status"`
	Notifications       NotificationPreference `json:"notifications"`
	Joined_At           *time.Time             `json:"joinedAt"`
	Last_Visited_At     *time.Time             `json:"lastVisitedAt"`
	Datetime_Create     time.Time              `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update     time.Time              `json:"datetimeUpdate" goqu:"skipinsert"`
}

// ViewerStatus maps a persisted status to the derived viewer status.
func (m *GroupMembership) ViewerStatus() ViewerGroupStatus {
	if m == nil {
		return ViewerGuest
	}
	switch m.Status {
	case StatusMember:
		return ViewerMember
	case StatusPending:
		return ViewerPending
	case StatusSuspended:
		return ViewerSuspended
	}
	return ViewerGuest
}
