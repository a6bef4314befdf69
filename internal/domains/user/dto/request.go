package dto

import "github.com/savioruz/geoapi/pkg/gdto"

type GetUsersRequest struct {
	gdto.PagedRequest
	UserName string `json:"userName" query:"userName" validate:"max=50"`
	Email    string `json:"email" query:"email" validate:"max=255"`
}

type UpdateUserRolesRequest struct {
	Roles []string `example:"User" json:"roles" validate:"required,min=1,dive,oneof=Admin User"`
}
