package domain

// Vertical is a business line assets can be filed under.
type Vertical struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Country is an ISO country a domain targets.
type Country struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Entity is a company or person holding assets.
type Entity struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	RNC  *string `json:"rnc"`
	Type *string `json:"type"`
}

func (e *Entity) ApplyPatch(p Patch) error {
	return firstError(
		p.String("name", &e.Name),
		p.OptString("rnc", &e.RNC),
		p.OptString("type", &e.Type),
	)
}

func (e *Entity) Validate() error {
	return required("name", e.Name)
}
