package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AnalyticsConsent is stored per user and echoed to the client; the backend
// itself does no analytics.
type AnalyticsConsent int16

const (
	ConsentNotAsked  AnalyticsConsent = 0
	ConsentDeclined  AnalyticsConsent = 1
	ConsentEssential AnalyticsConsent = 2
	ConsentFull      AnalyticsConsent = 3
)

type UserModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserEmail string    `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`

	UserPasswordHash string `gorm:"column:user_password_hash;type:varchar(100);not null" json:"-"`

	UserFirstName     string `gorm:"column:user_first_name;type:varchar(100);not null" json:"user_first_name"`
	UserLastName      string `gorm:"column:user_last_name;type:varchar(100);not null" json:"user_last_name"`
	UserPreferredName string `gorm:"column:user_preferred_name;type:varchar(100);not null;default:''" json:"user_preferred_name"`

	UserBio               string `gorm:"column:user_bio;type:text;not null;default:''" json:"user_bio"`
	UserProfilePictureURL string `gorm:"column:user_profile_picture_url;type:text;not null;default:''" json:"user_profile_picture_url"`

	UserPhone   string `gorm:"column:user_phone;type:varchar(30);not null;default:''" json:"user_phone"`
	UserStreet  string `gorm:"column:user_street;type:varchar(200);not null;default:''" json:"user_street"`
	UserCity    string `gorm:"column:user_city;type:varchar(100);not null;default:''" json:"user_city"`
	UserState   string `gorm:"column:user_state;type:varchar(40);not null;default:''" json:"user_state"`
	UserZipCode string `gorm:"column:user_zip_code;type:varchar(20);not null;default:''" json:"user_zip_code"`

	UserIsParent  bool `gorm:"column:user_is_parent;not null;default:false" json:"user_is_parent"`
	UserIsTeacher bool `gorm:"column:user_is_teacher;not null;default:false" json:"user_is_teacher"`
	UserIsStaff   bool `gorm:"column:user_is_staff;not null;default:false" json:"user_is_staff"`
	UserIsSponsor bool `gorm:"column:user_is_sponsor;not null;default:false" json:"user_is_sponsor"`

	UserJoinDate time.Time `gorm:"column:user_join_date;not null" json:"user_join_date"`
	UserIsActive bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserEmailNotifications bool `gorm:"column:user_email_notifications;not null;default:true" json:"user_email_notifications"`
	UserSMSNotifications   bool `gorm:"column:user_sms_notifications;not null;default:false" json:"user_sms_notifications"`

	UserSkills             pq.StringArray `gorm:"column:user_skills;type:text[]" json:"user_skills,omitempty"`
	UserVolunteerInterests pq.StringArray `gorm:"column:user_volunteer_interests;type:text[]" json:"user_volunteer_interests,omitempty"`

	UserAvailableSchoolHours bool `gorm:"column:user_available_school_hours;not null;default:false" json:"user_available_school_hours"`
	UserAvailableEvenings    bool `gorm:"column:user_available_evenings;not null;default:false" json:"user_available_evenings"`
	UserAvailableWeekends    bool `gorm:"column:user_available_weekends;not null;default:false" json:"user_available_weekends"`

	UserBackgroundCheckCompleted bool       `gorm:"column:user_background_check_completed;not null;default:false" json:"user_background_check_completed"`
	UserBackgroundCheckDate      *time.Time `gorm:"column:user_background_check_date" json:"user_background_check_date,omitempty"`

	UserAnalyticsConsent AnalyticsConsent `gorm:"column:user_analytics_consent;type:smallint;not null;default:0" json:"user_analytics_consent"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}

// DisplayName prefers the preferred name over the first name.
func (m *UserModel) DisplayName() string {
	first := m.UserFirstName
	if m.UserPreferredName != "" {
		first = m.UserPreferredName
	}
	if m.UserLastName == "" {
		return first
	}
	return first + " " + m.UserLastName
}

// PublicUser is the safe projection for non-board callers: no contact,
// address or compliance fields.
type PublicUser struct {
	UserID                uuid.UUID      `json:"user_id"`
	UserFirstName         string         `json:"user_first_name"`
	UserLastName          string         `json:"user_last_name"`
	UserPreferredName     string         `json:"user_preferred_name"`
	UserBio               string         `json:"user_bio"`
	UserProfilePictureURL string         `json:"user_profile_picture_url"`
	UserIsParent          bool           `json:"user_is_parent"`
	UserIsTeacher         bool           `json:"user_is_teacher"`
	UserIsStaff           bool           `json:"user_is_staff"`
	UserIsSponsor         bool           `json:"user_is_sponsor"`
	UserSkills            pq.StringArray `json:"user_skills,omitempty"`
	UserVolunteerInterests pq.StringArray `json:"user_volunteer_interests,omitempty"`
}

func (m *UserModel) ToPublic() PublicUser {
	return PublicUser{
		UserID:                m.UserID,
		UserFirstName:         m.UserFirstName,
		UserLastName:          m.UserLastName,
		UserPreferredName:     m.UserPreferredName,
		UserBio:               m.UserBio,
		UserProfilePictureURL: m.UserProfilePictureURL,
		UserIsParent:          m.UserIsParent,
		UserIsTeacher:         m.UserIsTeacher,
		UserIsStaff:           m.UserIsStaff,
		UserIsSponsor:         m.UserIsSponsor,
		UserSkills:            m.UserSkills,
		UserVolunteerInterests: m.UserVolunteerInterests,
	}
}
