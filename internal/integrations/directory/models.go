package directory

// Provider запись о специалисте из внешнего справочника (CMS)
type Provider struct {
	ID         int64    `json:"id"`
	FullName   string   `json:"fullName"`
	Title      *string  `json:"title,omitempty"`
	Branch     *string  `json:"branch,omitempty"`
	Experience *int     `json:"experience,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	IsActive   *bool    `json:"isActive,omitempty"`
}

// providersEnvelope конверт ответа справочника: полезная нагрузка в поле data
type providersEnvelope struct {
	Data []Provider `json:"data"`
}
