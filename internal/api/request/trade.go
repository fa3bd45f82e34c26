package request

type CreateTradeRequest struct {
	Date       string   `json:"date"`
	Symbol     string   `json:"symbol"`
	Side       string   `json:"side"`
	Size       float64  `json:"size"`
	RiskReward float64  `json:"riskReward"`
	Pnl        float64  `json:"pnl"`
	Tags       []string `json:"tags,omitempty"`
	JournalID  string   `json:"journalId,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

type UpdateTradeRequest struct {
	Date       *string   `json:"date,omitempty"`
	Symbol     *string   `json:"symbol,omitempty"`
	Side       *string   `json:"side,omitempty"`
	Size       *float64  `json:"size,omitempty"`
	RiskReward *float64  `json:"riskReward,omitempty"`
	Pnl        *float64  `json:"pnl,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	JournalID  *string   `json:"journalId,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
}
