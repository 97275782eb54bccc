package model

// Account is a back-office login. Only admins exist today.
type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:ADMIN" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

type LoginInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Password string `validate:"required,min=6,max=72" json:"password"`
}
