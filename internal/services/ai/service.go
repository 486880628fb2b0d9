// Package ai implements the profile bio generation service. It builds
// a structured prompt from the member's profile fields, asks an
// external text-completion provider for a bio, and persists the result
// as the member's description.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nexo/internal/models"
	"nexo/internal/repositories"
)

var ErrMemberNotFound = errors.New("member not found")

const systemPrompt = "Você é um assistente de IA especialista em criar biografias profissionais para empresários brasileiros. " +
	"Seu objetivo é criar uma bio concisa, profissional e que destaque os pontos fortes do empresário, seguindo o padrão solicitado."

// Completer generates text from a prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Service interface {
	GenerateDescription(ctx context.Context, memberID uint) (string, error)
}

type service struct {
	completer  Completer
	memberRepo repositories.MemberRepository
}

func NewService(completer Completer, memberRepo repositories.MemberRepository) Service {
	return &service{
		completer:  completer,
		memberRepo: memberRepo,
	}
}

// GenerateDescription synthesizes a bio from the member's profile and
// stores it as their description.
func (s *service) GenerateDescription(ctx context.Context, memberID uint) (string, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return "", ErrMemberNotFound
		}
		return "", err
	}

	description, err := s.completer.Complete(ctx, systemPrompt, buildUserPrompt(member))
	if err != nil {
		return "", err
	}
	description = strings.TrimSpace(description)

	member.Description = description
	if err := s.memberRepo.Update(member); err != nil {
		return "", err
	}

	return description, nil
}

func buildUserPrompt(member *models.Member) string {
	return fmt.Sprintf(
		"Crie uma bio profissional em português do Brasil para um empresário com as seguintes informações:\n"+
			"- Nome: %s\n"+
			"- Empresa: %s\n"+
			"- Setor: %s\n"+
			"- Título: %s\n"+
			"- Especialidades: %s\n\n"+
			"A bio deve seguir o seguinte padrão:\n"+
			"1. **Quem sou eu:** Uma breve introdução sobre o profissional.\n"+
			"2. **O que eu faço:** Uma descrição sobre sua atuação profissional e sua empresa.\n"+
			"3. **O que eu busco:** O que o profissional busca na comunidade (parcerias, clientes, etc.).\n",
		member.Name, member.Company, member.Sector, member.Title, strings.Join(member.Expertise, ", "),
	)
}
