package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monevo-app/monevo-api/internal/account"
	"github.com/monevo-app/monevo-api/internal/config"
	"github.com/monevo-app/monevo-api/internal/goal"
	"github.com/monevo-app/monevo-api/internal/transaction"
)

const apologyAnswer = "Desculpe, não consegui processar sua pergunta agora. Tente novamente em instantes."

type Service interface {
	Chat(ctx context.Context, userID uuid.UUID, req ChatRequest) (*ChatResponse, error)
	SuggestGoals(ctx context.Context, userID uuid.UUID, req GoalSuggestionRequest) (*GoalSuggestionResponse, error)
}

type service struct {
	provider Provider
	builder  *contextBuilder
}

func NewService(provider Provider, goals goal.Repository, accounts account.Repository, transactions transaction.Repository) Service {
	return &service{
		provider: provider,
		builder:  newContextBuilder(goals, accounts, transactions),
	}
}

func (s *service) Chat(ctx context.Context, userID uuid.UUID, req ChatRequest) (*ChatResponse, error) {
	log := config.WithContext(ctx)

	fc, err := s.builder.Build(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.SendPrompt(ctx, chatSystemPrompt, buildChatPrompt(fc.Render(), req.Message))
	if err != nil {
		// the chat degrades gracefully, the frontend shows the apology as a
		// normal message instead of an error state
		log.WithError(err).Warn("Chat degraded to fallback answer")
		return &ChatResponse{
			Answer:           apologyAnswer,
			SuggestedActions: SuggestActions(req.Message),
		}, nil
	}

	return &ChatResponse{
		Answer:           CleanModelText(raw),
		SuggestedActions: SuggestActions(req.Message),
	}, nil
}

func (s *service) SuggestGoals(ctx context.Context, userID uuid.UUID, req GoalSuggestionRequest) (*GoalSuggestionResponse, error) {
	log := config.WithContext(ctx)

	fc, err := s.builder.Build(ctx, userID)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.askForGoals(ctx, fc, req)
	if err != nil {
		log.WithError(err).Warn("Goal suggestion degraded to fallback")
		suggestions = []SuggestedGoal{fallbackGoal(fc)}
	}

	return &GoalSuggestionResponse{Suggestions: suggestions}, nil
}

func (s *service) askForGoals(ctx context.Context, fc *FinancialContext, req GoalSuggestionRequest) ([]SuggestedGoal, error) {
	raw, err := s.provider.SendPrompt(ctx, goalsSystemPrompt, buildGoalsPrompt(fc.Render(), req))
	if err != nil {
		return nil, err
	}

	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var suggestions []SuggestedGoal
	if err := json.Unmarshal([]byte(payload), &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// fallbackGoal proposes an emergency reserve sized at six months of the
// observed expenses, the standard starting point when the model is offline.
func fallbackGoal(fc *FinancialContext) SuggestedGoal {
	target := fc.Expenses.Mul(decimal.NewFromInt(6))
	if target.IsZero() {
		target = decimal.NewFromInt(5000)
	}
	return SuggestedGoal{
		Title:        "Reserva de emergência",
		TargetAmount: target,
		Months:       12,
		Reason:       "Uma reserva de seis meses de despesas protege contra imprevistos.",
	}
}

var actionKeywords = []struct {
	keywords []string
	action   string
}{
	{[]string{"meta", "objetivo", "juntar", "guardar"}, "criar_meta"},
	{[]string{"gasto", "despesa", "economizar", "cortar"}, "revisar_orcamento"},
	{[]string{"dívida", "divida", "cartão", "cartao", "fatura"}, "ver_faturas"},
	{[]string{"investir", "investimento", "render"}, "explorar_investimentos"},
}

// SuggestActions maps keywords in the user's message to quick actions the
// frontend renders as buttons under the answer.
func SuggestActions(message string) []string {
	lower := strings.ToLower(message)

	var actions []string
	for _, entry := range actionKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				actions = append(actions, entry.action)
				break
			}
		}
	}
	return actions
}
