package dto

import "github.com/savioruz/geoapi/internal/domains/user/repository"

type UserResponse struct {
	ID        string   `json:"id"`
	UserName  string   `json:"userName"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
}

func (u UserResponse) FromModel(model repository.User, roles []string) UserResponse {
	if roles == nil {
		roles = []string{}
	}

	return UserResponse{
		ID:        model.ID.String(),
		UserName:  model.Username,
		Email:     model.Email,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		Roles:     roles,
	}
}

// FromModels pairs every user with its roles, keyed by user id.
func FromModels(models []repository.User, roles map[string][]string) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, model := range models {
		res[i] = UserResponse{}.FromModel(model, roles[model.ID.String()])
	}

	return res
}
