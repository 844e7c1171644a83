package controllers

import (
	"time"

	"github.com/GoelGroups/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockUser creates a sample user profile for testing
func MockUser() models.UserProfile {
	role := "Prayer Scribe"
	return models.UserProfile{
		User_Profile_ID: 42,
		Username:        "hannah",
		Display_Name:    "Hannah R.",
		Email:           "hannah@example.com",
		User_Role:       &role,
		Admin:           false,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockUserWithPassword creates a sample user with a bcrypt hashed password
// Password is "password123" - use this in tests
func MockUserWithPassword() models.UserProfile {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := MockUser()
	user.Password = string(hashedPassword)
	return user
}

// MockGroupProfile creates a sample group for testing
func MockGroupProfile() models.GroupProfile {
	return models.GroupProfile{
		Group_Profile_ID: 1,
		Group_Name:       "Gatewatch Intercessors",
		Focus:            "Night watch prayer covering global cities.",
		Scripture_Anchor: "Isaiah 62:6-7",
		Description:      "Interceding nightly for awakening in global cities.",
		Owner_ID:         1,
		Member_Limit:     40,
		Is_Private:       false,
		Tags:             []string{"Intercession", "Cities"},
		Last_Activity_At: time.Now(),
		Datetime_Create:  time.Now(),
		Datetime_Update:  time.Now(),
	}
}
