package gateway

import (
	"context"
	"net/http"

	"github.com/exebone56/ecom-pulse2/models"
)

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Client) Login(ctx context.Context, input LoginInput) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserInfo(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/user-info/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Position    *string `json:"position,omitempty"`
	Department  *string `json:"department,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPatch, "/update-profile/", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAvatar(ctx context.Context, filename string, data []byte) (*models.User, error) {
	f := newForm()
	f.file("avatar", filename, shrinkForUpload(data, avatarMaxWidth))

	var out models.User
	if err := c.doMultipart(ctx, http.MethodPatch, "/update-avatar/", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

func (c *Client) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	return c.doJSON(ctx, http.MethodPost, "/change-password/", input, nil)
}
