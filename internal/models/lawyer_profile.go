package models

// LawyerProfile is the per-user professional verification record. It is
// created pending at signup and moved to approved or rejected exactly once
// by an admin; both outcomes are terminal.
type LawyerProfile struct {
	BaseModel
	UserID      string         `gorm:"uniqueIndex;not null" json:"user_id"`
	Nickname    string         `gorm:"not null" json:"nickname"`
	LicenseFile string         `gorm:"not null" json:"license_file"`
	Status      ApprovalStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
