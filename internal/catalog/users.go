package catalog

import (
	"github.com/gin-gonic/gin"

	"consulate-console/internal/middleware"
	"consulate-console/internal/model"
	"consulate-console/internal/resource"
	"consulate-console/internal/resource/usecase"
)

// UserPayload is the create/update body for a console account. The password
// is only sent on creation or when the admin resets it.
type UserPayload struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=ADMIN EDITOR AGENT"`
	Active    bool   `json:"active"`
	Password  string `json:"password,omitempty" validate:"omitempty,min=8"`
}

func usersDescriptor() resource.Descriptor {
	return resource.Descriptor{
		Name:         "users",
		BasePath:     "/users",
		DefaultLimit: 10,
		Filters: []resource.FilterField{
			{Name: "email", Kind: resource.FilterText},
			{Name: "role", Kind: resource.FilterEnum, Values: []string{
				string(model.RoleAdmin),
				string(model.RoleEditor),
				string(model.RoleAgent),
			}},
			{Name: "active", Kind: resource.FilterEnum, Values: []string{"true", "false"}},
		},
	}
}

func registerUsers(rg *gin.RouterGroup, mw middleware.Middleware, deps Deps) {
	messages := usecase.Messages{
		Created:  "utilisateur créé avec succès",
		Updated:  "utilisateur mis à jour avec succès",
		Deleted:  "utilisateur supprimé avec succès",
		NotFound: "utilisateur introuvable",
	}
	// Account management is reserved to administrators.
	register[model.User](rg, mw, deps, usersDescriptor(), messages, bindUser, mw.RequireRole(model.RoleAdmin))
}

func bindUser(c *gin.Context) (any, error) {
	var p UserPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		return nil, err
	}
	return p, nil
}
