package category

import "github.com/google/uuid"

type CreateCategoryDTO struct {
	Type     CategoryType `json:"tipo"`
	Key      string       `json:"chave"`
	Name     string       `json:"nome"`
	Order    *int         `json:"ordem"`
	ParentID *uuid.UUID   `json:"parent_id"`
}

type UpdateCategoryDTO struct {
	Name     *string    `json:"nome"`
	Order    *int       `json:"ordem"`
	Active   *bool      `json:"ativo"`
	ParentID *uuid.UUID `json:"parent_id"`
}
