package models

// User is a persisted staff identity. Password holds a bcrypt hash and is
// never updated after creation.
type User struct {
	Base
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null;<-:create" json:"-"`
	Role     string `gorm:"type:varchar(20);not null" json:"role"`
	Lang     string `gorm:"type:varchar(10)" json:"lang"`
}
