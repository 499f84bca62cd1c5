package response

import (
	"time"

	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	var resp UserResponse
	if err := copier.Copy(&resp, rm); err != nil {
		panic(err)
	}
	return &resp
}
