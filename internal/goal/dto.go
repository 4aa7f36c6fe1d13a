package goal

import (
	"github.com/shopspring/decimal"

	util "github.com/monevo-app/monevo-api/internal/utils"
)

type CreateGoalDTO struct {
	Title         string           `json:"titulo"`
	Category      string           `json:"categoria"`
	Description   *string          `json:"descricao"`
	TargetAmount  decimal.Decimal  `json:"valor_objetivo"`
	CurrentAmount *decimal.Decimal `json:"valor_atual"`
	Deadline      *util.LocalDate  `json:"prazo"`
}

type UpdateGoalDTO struct {
	Title         *string          `json:"titulo"`
	Category      *string          `json:"categoria"`
	Description   *string          `json:"descricao"`
	TargetAmount  *decimal.Decimal `json:"valor_objetivo"`
	CurrentAmount *decimal.Decimal `json:"valor_atual"`
	Deadline      *util.LocalDate  `json:"prazo"`
	Status        *GoalStatus      `json:"status"`
}
