package onboarding

import "github.com/monevo-app/monevo-api/internal/user"

// CompleteOnboardingDTO is the single payload the wizard posts at the end.
// Monetary values arrive as the frontend renders them, in BRL text.
type CompleteOnboardingDTO struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`

	Age           *int    `json:"idade"`
	Profession    *string `json:"profissao"`
	MaritalStatus *string `json:"estado_civil"`

	InitialAccount *InitialAccountDTO `json:"conta_inicial"`
	Goals          []GoalWizardDTO    `json:"metas"`
	Budget         map[string]string  `json:"orcamento"`
}

type InitialAccountDTO struct {
	Name           string `json:"nome"`
	Type           string `json:"tipo"`
	CurrentBalance string `json:"saldo_atual"`
}

type GoalWizardDTO struct {
	Title        string `json:"titulo"`
	TargetAmount string `json:"valor_objetivo"`
	Months       int    `json:"meses"`
	Category     string `json:"categoria"`
}

type UpdateOnboardingDTO struct {
	Steps  map[string]interface{} `json:"etapas"`
	Budget map[string]string      `json:"orcamento"`
}

type CompleteOnboardingResponse struct {
	Session *user.LoginResponse `json:"sessao"`
	Profile *Profile            `json:"perfil"`
}
