package models

import "time"

// View models returned by the group services. All of these are derived
// on every read by joining the group, membership, request, and user
// tables; none of them are cached or stored.

type FacilitatorView struct {
	User_Profile_ID int    `json:"userProfileId"`
	Display_Name    string `json:"displayName"`
}

type PrayerRequestPreview struct {
	Prayer_Request_ID int        `json:"prayerRequestId"`
	Title             string     `json:"title"`
	Created_At        time.Time  `json:"createdAt"`
	Archived_At       *time.Time `json:"archivedAt,omitempty"`
	Praying_Count     int        `json:"prayingCount"`
	Author_Name       string     `json:"authorName"`
}

type PrayerGroupSummary struct {
	Group_Profile_ID int                    `json:"groupId"`
	Group_Name       string                 `json:"groupName"`
	Focus            string                 `json:"focus"`
	Scripture_Anchor string                 `json:"scriptureAnchor"`
	Description      string                 `json:"description"`
	Member_Count     int                    `json:"memberCount"`
	Member_Limit     int                    `json:"memberLimit"`
	Pending_Count    int                    `json:"pendingCount"`
	Viewer_Status    ViewerGroupStatus      `json:"viewerStatus"`
	Is_Private       bool                   `json:"isPrivate"`
	Tags             []string               `json:"tags"`
	Last_Activity_At time.Time              `json:"lastActivityAt"`
	Facilitators     []FacilitatorView      `json:"facilitators"`
	Preview_Requests []PrayerRequestPreview `json:"previewRequests"`
}

// GroupMembershipView is the viewer-facing shape of a membership row.
// For guests (no row) it carries zero values with status "guest".
type GroupMembershipView struct {
	Group_Membership_ID int                    `json:"groupMembershipId"`
	Status              ViewerGroupStatus      `json:"status"`
	Role                GroupRole              `json:"role"`
	Notifications       NotificationPreference `json:"notifications"`
	Joined_At           *time.Time             `json:"joinedAt,omitempty"`
	Last_Visited_At     *time.Time             `json:"lastVisitedAt,omitempty"`
}

type RequestAuthorView struct {
	User_Profile_ID int     `json:"userProfileId"`
	Display_Name    string  `json:"displayName"`
	User_Role       *string `json:"userRole,omitempty"`
}

type PrayerRequestView struct {
	Prayer_Request_ID int               `json:"prayerRequestId"`
	Title             string            `json:"title"`
	Body              *string           `json:"body,omitempty"`
	Reference         *string           `json:"reference,omitempty"`
	Created_At        time.Time         `json:"createdAt"`
	Archived_At       *time.Time        `json:"archivedAt,omitempty"`
	Author            RequestAuthorView `json:"author"`
	Praying_Count     int               `json:"prayingCount"`
	Viewer_Has_Prayed bool              `json:"viewerHasPrayed"`
}

type PrayerGroupDetail struct {
	Summary          PrayerGroupSummary  `json:"summary"`
	Membership       GroupMembershipView `json:"membership"`
	Requests         []PrayerRequestView `json:"requests"`
	ArchivedRequests []PrayerRequestView `json:"archivedRequests"`
	CapacityFull     bool                `json:"capacityFull"`
}

type JoinGroupResult struct {
	Status           ViewerGroupStatus    `json:"status"`
	RequiresApproval bool                 `json:"requiresApproval"`
	CapacityFull     bool                 `json:"capacityFull"`
	Membership       *GroupMembershipView `json:"membership"`
}

type LeaveGroupResult struct {
	Status     ViewerGroupStatus    `json:"status"`
	Membership *GroupMembershipView `json:"membership"`
}

type NotificationPreferenceResult struct {
	Membership GroupMembershipView `json:"membership"`
}

type TogglePrayerReactionResult struct {
	Praying_Count     int  `json:"prayingCount"`
	Viewer_Has_Prayed bool `json:"viewerHasPrayed"`
}
