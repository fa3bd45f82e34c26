package request

type CreateJournalEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

type UpdateJournalEntryRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Mood    *string `json:"mood,omitempty"`
}
