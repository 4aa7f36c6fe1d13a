package assistant

import "github.com/shopspring/decimal"

type ChatRequest struct {
	Message string `json:"mensagem"`
}

type ChatResponse struct {
	Answer           string   `json:"resposta"`
	SuggestedActions []string `json:"acoes_sugeridas"`
}

type GoalSuggestionRequest struct {
	MainObjective string `json:"objetivo_principal"`
	HorizonMonths int    `json:"horizonte_meses"`
}

type SuggestedGoal struct {
	Title        string          `json:"titulo"`
	TargetAmount decimal.Decimal `json:"valor_objetivo"`
	Months       int             `json:"meses"`
	Reason       string          `json:"justificativa"`
}

type GoalSuggestionResponse struct {
	Suggestions []SuggestedGoal `json:"metas"`
}
