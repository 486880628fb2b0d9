// Package auth implements the credential and token service.
package auth

import (
	"errors"
	"log"

	"nexo/internal/models"
	"nexo/internal/repositories"
	"nexo/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNoGuestAccount     = errors.New("guest account not found")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type Service interface {
	Register(input *models.RegisterInput) (*models.Member, error)
	Login(email, password string) (*models.Member, string, error)
	GuestLogin() (*models.Member, string, error)
	Logout(memberID uint) error
	ChangePassword(memberID uint, oldPassword, newPassword string) error
	GetMemberByID(memberID uint) (*models.Member, error)
	GetTokenVersion(memberID uint) (int, error)
}

type service struct {
	memberRepo repositories.MemberRepository
}

func NewService(memberRepo repositories.MemberRepository) Service {
	return &service{
		memberRepo: memberRepo,
	}
}

func (s *service) Register(input *models.RegisterInput) (*models.Member, error) {
	if _, err := s.memberRepo.GetByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	tier := input.Tier
	if tier == "" {
		tier = models.TierDisruption
	}

	member := &models.Member{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashedPassword),
		Role:         role,
		Tier:         tier,
		ContactInfo:  input.ContactInfo,
		IsActive:     true,
		TokenVersion: 1,
	}

	if err := s.memberRepo.Create(member); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return member, nil
}

func (s *service) Login(email, password string) (*models.Member, string, error) {
	member, err := s.memberRepo.GetByEmail(email)
	if err != nil {
		log.Printf("Login failed: no member for email %s", email)
		return nil, "", ErrInvalidCredentials
	}

	if !member.IsActive {
		return nil, "", ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for member %d", member.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(member)
	if err != nil {
		return nil, "", err
	}

	return member, token, nil
}

func (s *service) GuestLogin() (*models.Member, string, error) {
	guest, err := s.memberRepo.GetGuest()
	if err != nil {
		return nil, "", ErrNoGuestAccount
	}

	token, err := s.issueToken(guest)
	if err != nil {
		return nil, "", err
	}

	return guest, token, nil
}

func (s *service) Logout(memberID uint) error {
	return s.memberRepo.IncrementTokenVersion(memberID)
}

func (s *service) ChangePassword(memberID uint, oldPassword, newPassword string) error {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return errors.New("failed to get member")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(oldPassword)); err != nil {
		return errors.New("invalid old password")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	member.Password = string(hashedPassword)
	member.TokenVersion++ // Invalidate existing tokens

	if err := s.memberRepo.Update(member); err != nil {
		return errors.New("failed to update password")
	}

	return nil
}

func (s *service) GetMemberByID(memberID uint) (*models.Member, error) {
	return s.memberRepo.GetByID(memberID)
}

func (s *service) GetTokenVersion(memberID uint) (int, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return 0, err
	}
	return member.TokenVersion, nil
}

func (s *service) issueToken(member *models.Member) (string, error) {
	token, err := utils.GenerateToken(&models.MemberClaims{
		MemberID:     member.ID,
		Email:        member.Email,
		Role:         member.Role,
		TokenVersion: member.TokenVersion,
	})
	if err != nil {
		log.Println("Error generating token:", err)
		return "", errors.New("error generating token")
	}
	return token, nil
}
