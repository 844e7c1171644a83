package models

import "time"

type PrayerRequest struct {
	Prayer_Request_ID int        `json:"prayerRequestId" goqu:"skipinsert"`
	Group_Profile_ID  int        `json:"groupId"`
	Author_ID         int        `json:"authorId"`
	Title             string     `json:"title"`
	Body              *string    `json:"body"`
	Reference         *string    `json:"reference"`
	Archived_At       *time.Time `json:"archivedAt"`
	Last_Activity_At  time.Time  `json:"lastActivityAt"`
	Datetime_Create   time.Time  `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update   time.Time  `json:"datetimeUpdate" goqu:"skipinsert"`
}

type PrayerRequestCreate struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Reference string `json:"reference"`
}

// RequestReaction is one user's "praying" acknowledgment on a request.
// The (request, user) pair is unique; the praying count is always
// derived by counting rows, never stored.
type RequestReaction struct {
	Request_Reaction_ID int       `json:"requestReactionId" goqu:"skipinsert"`
	Prayer_Request_ID   int       `json:"prayerRequestId"`
	User_Profile_ID     int       `json:"userId"`
	Datetime_Create     time.Time `json:"datetimeCreate" goqu:"skipinsert"`
}
