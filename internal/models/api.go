package models

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateOfferRequest struct {
	Name             string   `json:"name" validate:"required,min=2,max=200"`
	ValueProps       string   `json:"value_props" validate:"required"`
	IdealUseCases    string   `json:"ideal_use_cases" validate:"required"`
	TargetRoles      []string `json:"target_roles" validate:"omitempty,dive,max=200"`
	TargetIndustries []string `json:"target_industries" validate:"omitempty,dive,max=200"`
}

type UploadLeadsResponse struct {
	Count int    `json:"count"`
	Leads []Lead `json:"leads"`
}

// ScoreSummary reports what a scoring run did: how many pairs were scored,
// which leads were skipped because the classifier failed, and the created
// results.
type ScoreSummary struct {
	Processed int      `json:"processed"`
	Skipped   []string `json:"skipped"`
	Results   []Result `json:"results"`
}
