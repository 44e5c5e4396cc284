package models

type User struct {
	BaseModel
	AuthID       string `gorm:"uniqueIndex;not null" json:"auth_id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Nickname     string `gorm:"not null" json:"nickname"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
	IsConfirmed  bool   `gorm:"default:false" json:"is_confirmed"`
	ConfirmToken string `json:"-"`

	// Relations
	LawyerProfile *LawyerProfile `gorm:"foreignKey:UserID" json:"lawyer_profile,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}
