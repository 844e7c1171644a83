package models

import (
	"time"

	"github.com/lib/pq"
)

type GroupProfile struct {
	Group_Profile_ID int            `json:"groupId" goqu:"skipinsert"`
	Group_Name       string         `json:"groupName"`
	Focus            string         `json:"focus"`
	Scripture_Anchor string         `json:"scriptureAnchor"`
	Description      string         `json:"description"`
	Owner_ID         int            `json:"ownerId"`
	Member_Limit     int            `json:"memberLimit"`
	Is_Private       bool           `json:"isPrivate"`
	Tags             pq.StringArray `json:"tags"`
	Last_Activity_At time.Time      `json:"lastActivityAt"`
	Datetime_Create  time.Time      `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update  time.Time      `json:"datetimeUpdate" goqu:"skipinsert"`
}
