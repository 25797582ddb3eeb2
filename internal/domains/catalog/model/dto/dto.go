package dto

import "salon/internal/domains/catalog/model"

type ServiceResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration int    `json:"duration"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Duration = model.Duration
}

func FromModels(models []model.Service) []ServiceResponse {
	res := make([]ServiceResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
