package servicio

type Request struct {
	ProviderID string  `json:"providerId"`
	ExpertName string  `json:"expertName"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Duration   int     `json:"duration"`
	Capacity   int     `json:"capacity"`
	Modality   string  `json:"modality"`
	Desc       string  `json:"desc"`
	Image      string  `json:"image"`
	Category   string  `json:"category"`
}
