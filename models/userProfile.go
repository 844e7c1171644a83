package models

import "time"

type UserProfile struct {
	User_Profile_ID int       `json:"userProfileId" goqu:"skipinsert"`
	Username        string    `json:"username"`
	Password        string    `json:"-"`
	Display_Name    string    `json:"displayName"`
	Email           string    `json:"email"`
	User_Role       *string   `json:"userRole"`
	Admin           bool      `json:"admin" goqu:"skipinsert"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserDirectoryEntry is the narrow directory view used for display
// enrichment. Membership status/role, never this record, drives
// authorization decisions.
type UserDirectoryEntry struct {
	User_Profile_ID int     `json:"userProfileId"`
	Display_Name    string  `json:"displayName"`
	User_Role       *string `json:"userRole"`
}
