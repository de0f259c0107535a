package dtos

import (
	"github.com/xdoubleu/essentia/v2/pkg/validate"
)

type CreateCalendarDto struct {
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
}

func (dto CreateCalendarDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", dto.Name, validate.IsNotEmpty)
	validate.Check(v, "ownerId", dto.OwnerID, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
