package entity

import "time"

const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

// DbUser represents an identity that signed in through the external identity server.
type DbUser struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	OpenID       string     `gorm:"column:open_id;type:varchar(64);uniqueIndex;not null" json:"open_id"`
	Name         string     `gorm:"column:name;type:varchar(255)" json:"name"`
	Email        string     `gorm:"column:email;type:varchar(320)" json:"email"`
	LoginMethod  string     `gorm:"column:login_method;type:varchar(64)" json:"login_method"`
	Role         string     `gorm:"column:role;type:varchar(50);index;not null;default:user" json:"role"`
	LastSignedIn *time.Time `gorm:"column:last_signed_in" json:"last_signed_in"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// IsAdmin reports whether the user carries the admin role.
func (u *DbUser) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// UserSummary is a lightweight user description returned to clients.
type UserSummary struct {
	ID           uint       `json:"id"`
	OpenID       string     `json:"open_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	LoginMethod  string     `json:"login_method"`
	Role         string     `json:"role"`
	LastSignedIn *time.Time `json:"last_signed_in,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// UserToSummary 将 DbUser 转换为 UserSummary。
func UserToSummary(u *DbUser) UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         u.Name,
		Email:        u.Email,
		LoginMethod:  u.LoginMethod,
		Role:         u.Role,
		LastSignedIn: u.LastSignedIn,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
