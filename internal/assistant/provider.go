package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/monevo-app/monevo-api/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo do Gemini")
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	log.Debugf("[IA] Resposta bruta do Gemini:\n%s", raw)

	if raw == "" {
		return "", errors.New("resposta vazia do modelo")
	}
	return raw, nil
}

// unavailableProvider stands in when the Gemini client cannot be built, so
// the service's fallbacks take over instead of the container failing.
type unavailableProvider struct{}

func (unavailableProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	return "", errors.New("provedor de IA indisponível")
}

// CleanModelText strips markdown code fences the model sometimes wraps
// answers in.
func CleanModelText(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(strings.Trim(clean, "`"))
}

// ExtractJSON finds the outermost JSON value inside a model answer that may
// carry prose around it.
func ExtractJSON(raw string) (string, error) {
	clean := CleanModelText(raw)

	start := strings.IndexAny(clean, "[{")
	if start < 0 {
		return "", errors.New("nenhum JSON encontrado na resposta")
	}

	var closer byte
	if clean[start] == '[' {
		closer = ']'
	} else {
		closer = '}'
	}
	end := strings.LastIndexByte(clean, closer)
	if end < start {
		return "", errors.New("JSON truncado na resposta")
	}
	return clean[start : end+1], nil
}
