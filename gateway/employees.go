package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/exebone56/ecom-pulse2/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type EmployeeFilter struct {
	Search       string
	Department   string
	Ordering     string
	ShowInactive bool
}

func (f EmployeeFilter) values() url.Values {
	params := url.Values{}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Department != "" {
		params.Set("department", f.Department)
	}
	if f.Ordering != "" {
		params.Set("ordering", f.Ordering)
	}
	if f.ShowInactive {
		params.Set("show_inactive", "true")
	}
	return params
}

// Employees returns the full (unpaginated) employee list.
func (c *Client) Employees(ctx context.Context, filter EmployeeFilter) ([]models.Employee, error) {
	var out []models.Employee
	if err := c.get(ctx, "/employees/", filter.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegisterEmployee(ctx context.Context, input models.NewEmployee) (*models.Employee, error) {
	if err := validate.Struct(input); err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	var out models.Employee
	if err := c.doJSON(ctx, http.MethodPost, "/employees/register/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d/delete/", id), nil, nil)
}

func (c *Client) ActivateEmployee(ctx context.Context, id int) (*models.Employee, error) {
	var out models.Employee
	if err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/employees/%d/activate/", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmployeeRoles lists assignable roles. The path typo is part of the server
// contract; do not "fix" it here.
func (c *Client) EmployeeRoles(ctx context.Context) ([]models.Role, error) {
	var out []models.Role
	if err := c.get(ctx, "/emoloyees/roles/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
