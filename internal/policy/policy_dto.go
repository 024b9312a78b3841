package policy

type PolicyResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Content       string   `json:"content"`
	EffectiveDate string   `json:"effective_date"`
	LastUpdated   string   `json:"last_updated"`
	Tags          []string `json:"tags"`
}

type FAQResponse struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Helpful    int      `json:"helpful"`
	NotHelpful int      `json:"not_helpful"`
}

type CatalogResponse struct {
	Policies []PolicyResponse `json:"policies"`
	FAQ      []FAQResponse    `json:"faq"`
}

type VoteRequest struct {
	Helpful *bool `json:"helpful" binding:"required"`
}
