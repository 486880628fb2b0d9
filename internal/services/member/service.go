// Package member implements the member directory: CRUD, the public
// showcase projections, and the self-service profile update.
package member

import (
	"errors"

	"nexo/internal/models"
	"nexo/internal/repositories"
	"nexo/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Service errors
var (
	ErrNotFound   = errors.New("member not found")
	ErrEmailTaken = errors.New("email already taken")
	ErrNotOwner   = errors.New("members may only update their own profile")
)

type Service interface {
	Get(memberID uint) (*models.Member, error)
	List(offset, limit int) ([]*models.Member, int64, error)
	Search(query string) ([]*models.Member, error)
	UpdateProfile(memberID, callerID uint, input *models.UpdateProfileInput) (*models.Member, error)
	Showcases() ([]models.Showcase, error)
	ShowcasesBySegment(segment string) ([]models.Showcase, error)
	Segments() ([]string, error)

	// Admin operations
	AdminCreate(input *models.RegisterInput) (*models.Member, error)
	AdminUpdate(memberID uint, input *models.AdminUpdateMemberInput) (*models.Member, error)
	AdminUpdateTier(memberID uint, tier string) error
	AdminDelete(memberID uint) error
}

type service struct {
	memberRepo repositories.MemberRepository
}

func NewService(memberRepo repositories.MemberRepository) Service {
	return &service{memberRepo: memberRepo}
}

func (s *service) Get(memberID uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *service) List(offset, limit int) ([]*models.Member, int64, error) {
	return s.memberRepo.List(offset, limit)
}

func (s *service) Search(query string) ([]*models.Member, error) {
	return s.memberRepo.Search(query)
}

// UpdateProfile applies a member's self-service update. Only the caller
// may update their own profile, and only allow-listed fields change.
func (s *service) UpdateProfile(memberID, callerID uint, input *models.UpdateProfileInput) (*models.Member, error) {
	if memberID != callerID {
		return nil, ErrNotOwner
	}

	v := validation.New()
	v.Profile(input)
	if !v.Valid() {
		return nil, errors.New(v.First())
	}

	member, err := s.Get(memberID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.ContactInfo != nil {
		member.ContactInfo = input.ContactInfo
	}
	if input.Company != nil {
		member.Company = *input.Company
	}
	if input.Sector != nil {
		member.Sector = *input.Sector
	}
	if input.Title != nil {
		member.Title = *input.Title
	}
	if input.Description != nil {
		member.Description = *input.Description
	}
	if input.ProfileImageURL != nil {
		member.ProfileImageURL = *input.ProfileImageURL
	}
	if input.Expertise != nil {
		member.Expertise = *input.Expertise
	}

	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}

	return member, nil
}

func (s *service) Showcases() ([]models.Showcase, error) {
	return s.showcases("")
}

func (s *service) ShowcasesBySegment(segment string) ([]models.Showcase, error) {
	return s.showcases(segment)
}

func (s *service) showcases(segment string) ([]models.Showcase, error) {
	members, err := s.memberRepo.ListShowcase(segment)
	if err != nil {
		return nil, err
	}

	showcases := make([]models.Showcase, 0, len(members))
	for _, m := range members {
		showcases = append(showcases, m.ToShowcase())
	}
	return showcases, nil
}

func (s *service) Segments() ([]string, error) {
	return s.memberRepo.ListSectors()
}

func (s *service) AdminCreate(input *models.RegisterInput) (*models.Member, error) {
	v := validation.New()
	v.MemberRegistration(input)
	if !v.Valid() {
		return nil, errors.New(v.First())
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

func (s *service) AdminUpdate(memberID uint, input *models.AdminUpdateMemberInput) (*models.Member, error) {
	member, err := s.Get(memberID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Tier != nil {
		member.Tier = *input.Tier
	}
	if input.Role != nil {
		member.Role = *input.Role
	}
	if input.ContactInfo != nil {
		member.ContactInfo = input.ContactInfo
	}
	if input.Verified != nil {
		member.Verified = *input.Verified
	}
	if input.Public != nil {
		member.Public = *input.Public
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		member.Password = string(hashed)
		member.TokenVersion++
	}

	if err := s.memberRepo.Update(member); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return member, nil
}

func (s *service) AdminUpdateTier(memberID uint, tier string) error {
	member, err := s.Get(memberID)
	if err != nil {
		return err
	}
	member.Tier = tier
	return s.memberRepo.Update(member)
}

func (s *service) AdminDelete(memberID uint) error {
	err := s.memberRepo.Delete(memberID)
	if errors.Is(err, repositories.ErrMemberNotFound) {
		return ErrNotFound
	}
	return err
}
