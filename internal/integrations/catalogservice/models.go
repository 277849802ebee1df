package catalogservice

// Service модель услуги ситтера из CatalogService
type Service struct {
	ID          int64   `json:"id"`
	CaretakerID int64   `json:"caretakerId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"` // Цена за день ухода
	Enabled     bool    `json:"enabled"`
}
