// AngelaMos | 2026
// dto.go

package user

import (
	"time"

	"github.com/angelamos/givehub/internal/donation"
)

// UserResponse is the public projection of a user. The password hash never
// appears on any read path.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	UserResponse
	Donations    []donation.Response `json:"donations"`
	TotalDonated int64               `json:"total_donated"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
