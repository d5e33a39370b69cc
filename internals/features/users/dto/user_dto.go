package dto

import (
	"time"

	"github.com/lib/pq"

	userModel "ptaweb_backend/internals/features/users/model"
)

type CreateUserRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`

	UserFirstName     string `json:"user_first_name" validate:"required,min=1,max=100"`
	UserLastName      string `json:"user_last_name" validate:"required,min=1,max=100"`
	UserPreferredName string `json:"user_preferred_name" validate:"omitempty,max=100"`

	UserBio               string `json:"user_bio" validate:"omitempty"`
	UserProfilePictureURL string `json:"user_profile_picture_url" validate:"omitempty,url"`

	UserPhone   string `json:"user_phone" validate:"omitempty,max=30"`
	UserStreet  string `json:"user_street" validate:"omitempty,max=200"`
	UserCity    string `json:"user_city" validate:"omitempty,max=100"`
	UserState   string `json:"user_state" validate:"omitempty,max=40"`
	UserZipCode string `json:"user_zip_code" validate:"omitempty,max=20"`

	UserIsParent  bool `json:"user_is_parent"`
	UserIsTeacher bool `json:"user_is_teacher"`
	UserIsStaff   bool `json:"user_is_staff"`
	UserIsSponsor bool `json:"user_is_sponsor"`

	UserSkills             []string `json:"user_skills" validate:"omitempty,dive,max=80"`
	UserVolunteerInterests []string `json:"user_volunteer_interests" validate:"omitempty,dive,max=80"`

	UserAvailableSchoolHours bool `json:"user_available_school_hours"`
	UserAvailableEvenings    bool `json:"user_available_evenings"`
	UserAvailableWeekends    bool `json:"user_available_weekends"`
}

func (r *CreateUserRequest) ToModel() *userModel.UserModel {
	return &userModel.UserModel{
		UserEmail: r.UserEmail,

		UserFirstName:     r.UserFirstName,
		UserLastName:      r.UserLastName,
		UserPreferredName: r.UserPreferredName,

		UserBio:               r.UserBio,
		UserProfilePictureURL: r.UserProfilePictureURL,

		UserPhone:   r.UserPhone,
		UserStreet:  r.UserStreet,
		UserCity:    r.UserCity,
		UserState:   r.UserState,
		UserZipCode: r.UserZipCode,

		UserIsParent:  r.UserIsParent,
		UserIsTeacher: r.UserIsTeacher,
		UserIsStaff:   r.UserIsStaff,
		UserIsSponsor: r.UserIsSponsor,

		UserJoinDate: time.Now().UTC(),
		UserIsActive: true,

		UserEmailNotifications: true,

		UserSkills:             pq.StringArray(r.UserSkills),
		UserVolunteerInterests: pq.StringArray(r.UserVolunteerInterests),

		UserAvailableSchoolHours: r.UserAvailableSchoolHours,
		UserAvailableEvenings:    r.UserAvailableEvenings,
		UserAvailableWeekends:    r.UserAvailableWeekends,
	}
}

type UpdateUserRequest struct {
	UserFirstName     *string `json:"user_first_name" validate:"omitempty,min=1,max=100"`
	UserLastName      *string `json:"user_last_name" validate:"omitempty,min=1,max=100"`
	UserPreferredName *string `json:"user_preferred_name" validate:"omitempty,max=100"`

	UserBio               *string `json:"user_bio" validate:"omitempty"`
	UserProfilePictureURL *string `json:"user_profile_picture_url" validate:"omitempty"`

	UserPhone   *string `json:"user_phone" validate:"omitempty,max=30"`
	UserStreet  *string `json:"user_street" validate:"omitempty,max=200"`
	UserCity    *string `json:"user_city" validate:"omitempty,max=100"`
	UserState   *string `json:"user_state" validate:"omitempty,max=40"`
	UserZipCode *string `json:"user_zip_code" validate:"omitempty,max=20"`

	UserIsParent  *bool `json:"user_is_parent" validate:"omitempty"`
	UserIsTeacher *bool `json:"user_is_teacher" validate:"omitempty"`
	UserIsStaff   *bool `json:"user_is_staff" validate:"omitempty"`
	UserIsSponsor *bool `json:"user_is_sponsor" validate:"omitempty"`

	UserIsActive *bool `json:"user_is_active" validate:"omitempty"`

	UserEmailNotifications *bool `json:"user_email_notifications" validate:"omitempty"`
	UserSMSNotifications   *bool `json:"user_sms_notifications" validate:"omitempty"`

	UserSkills             []string `json:"user_skills" validate:"omitempty,dive,max=80"`
	UserVolunteerInterests []string `json:"user_volunteer_interests" validate:"omitempty,dive,max=80"`

	UserAvailableSchoolHours *bool `json:"user_available_school_hours" validate:"omitempty"`
	UserAvailableEvenings    *bool `json:"user_available_evenings" validate:"omitempty"`
	UserAvailableWeekends    *bool `json:"user_available_weekends" validate:"omitempty"`

	UserBackgroundCheckCompleted *bool      `json:"user_background_check_completed" validate:"omitempty"`
	UserBackgroundCheckDate      *time.Time `json:"user_background_check_date" validate:"omitempty"`

	UserAnalyticsConsent *userModel.AnalyticsConsent `json:"user_analytics_consent" validate:"omitempty,min=0,max=3"`
}

func (r *UpdateUserRequest) ApplyToModel(m *userModel.UserModel) {
	if r.UserFirstName != nil {
		m.UserFirstName = *r.UserFirstName
	}
	if r.UserLastName != nil {
		m.UserLastName = *r.UserLastName
	}
	if r.UserPreferredName != nil {
		m.UserPreferredName = *r.UserPreferredName
	}
	if r.UserBio != nil {
		m.UserBio = *r.UserBio
	}
	if r.UserProfilePictureURL != nil {
		m.UserProfilePictureURL = *r.UserProfilePictureURL
	}
	if r.UserPhone != nil {
		m.UserPhone = *r.UserPhone
	}
	if r.UserStreet != nil {
		m.UserStreet = *r.UserStreet
	}
	if r.UserCity != nil {
		m.UserCity = *r.UserCity
	}
	if r.UserState != nil {
		m.UserState = *r.UserState
	}
	if r.UserZipCode != nil {
		m.UserZipCode = *r.UserZipCode
	}
	if r.UserIsParent != nil {
		m.UserIsParent = *r.UserIsParent
	}
	if r.UserIsTeacher != nil {
		m.UserIsTeacher = *r.UserIsTeacher
	}
	if r.UserIsStaff != nil {
		m.UserIsStaff = *r.UserIsStaff
	}
	if r.UserIsSponsor != nil {
		m.UserIsSponsor = *r.UserIsSponsor
	}
	if r.UserIsActive != nil {
		m.UserIsActive = *r.UserIsActive
	}
	if r.UserEmailNotifications != nil {
		m.UserEmailNotifications = *r.UserEmailNotifications
	}
	if r.UserSMSNotifications != nil {
		m.UserSMSNotifications = *r.UserSMSNotifications
	}
	if r.UserSkills != nil {
		m.UserSkills = pq.StringArray(r.UserSkills)
	}
	if r.UserVolunteerInterests != nil {
		m.UserVolunteerInterests = pq.StringArray(r.UserVolunteerInterests)
	}
	if r.UserAvailableSchoolHours != nil {
		m.UserAvailableSchoolHours = *r.UserAvailableSchoolHours
	}
	if r.UserAvailableEvenings != nil {
		m.UserAvailableEvenings = *r.UserAvailableEvenings
	}
	if r.UserAvailableWeekends != nil {
		m.UserAvailableWeekends = *r.UserAvailableWeekends
	}
	if r.UserBackgroundCheckCompleted != nil {
		m.UserBackgroundCheckCompleted = *r.UserBackgroundCheckCompleted
	}
	if r.UserBackgroundCheckDate != nil {
		m.UserBackgroundCheckDate = r.UserBackgroundCheckDate
	}
	if r.UserAnalyticsConsent != nil {
		m.UserAnalyticsConsent = *r.UserAnalyticsConsent
	}
}

// CreatedUserResponse carries the generated password exactly once, at
// creation time.
type CreatedUserResponse struct {
	User              *userModel.UserModel `json:"user"`
	GeneratedPassword string               `json:"generated_password"`
}
