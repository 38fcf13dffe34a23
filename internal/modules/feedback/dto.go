package feedback

type ListQuery struct {
	UserID     string `form:"userId"`
	ProviderID string `form:"providerId"`
}
