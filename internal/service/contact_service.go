package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Leganyst/store-notes/internal/model"
	"github.com/Leganyst/store-notes/internal/repository"
	"github.com/Leganyst/store-notes/internal/validate"
)

var roleAliases = map[string]model.Role{
	"MANAGER":     model.RoleManager,
	"OWNER":       model.RoleOwner,
	"SALESPERSON": model.RoleSalesperson,
}

// ParseRole разбирает должность без учёта регистра; принимает и английские синонимы.
func ParseRole(s string) (model.Role, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	if token == "" {
		return "", validate.Fail("cargo", "is required")
	}
	for _, r := range model.Roles {
		if string(r) == token {
			return r, nil
		}
	}
	if r, ok := roleAliases[token]; ok {
		return r, nil
	}
	return "", validate.Fail("cargo", fmt.Sprintf("unknown role %q", s))
}

type ContactInput struct {
	Name         string
	Registration string
	Role         string
	Phone        string
	Email        string
	Notes        string
	StoreID      int64 // при обновлении игнорируется
}

func (in ContactInput) validate() (model.Role, error) {
	if err := validate.First(
		validate.RequiredMax("nome", in.Name, 255),
		validate.Registration(in.Registration),
		validate.MaxLen("telefone", in.Phone, 255),
		validate.MaxLen("email", in.Email, 255),
	); err != nil {
		return "", err
	}
	return ParseRole(in.Role)
}

type ContactService struct {
	contacts repository.ContactRepository
	stores   repository.StoreRepository
}

func NewContactService(contacts repository.ContactRepository, stores repository.StoreRepository) *ContactService {
	return &ContactService{contacts: contacts, stores: stores}
}

func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}

// ListByStore: контакты loja, отсортированные по имени.
func (s *ContactService) ListByStore(ctx context.Context, storeID int64) ([]model.Contact, error) {
	return s.contacts.ListByStore(ctx, storeID)
}

func (s *ContactService) ListByRole(ctx context.Context, role model.Role) ([]model.Contact, error) {
	return s.contacts.ListByRole(ctx, role)
}

func (s *ContactService) ListByStoreAndRole(ctx context.Context, storeID int64, role model.Role) ([]model.Contact, error) {
	return s.contacts.ListByStoreAndRole(ctx, storeID, role)
}

func (s *ContactService) SearchInStore(ctx context.Context, storeID int64, text string) ([]model.Contact, error) {
	return s.contacts.SearchInStore(ctx, storeID, text)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*model.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "contact", id)
	}
	return c, nil
}

func (s *ContactService) Create(ctx context.Context, in ContactInput) (*model.Contact, error) {
	role, err := in.validate()
	if err != nil {
		return nil, err
	}

	ok, err := s.stores.Exists(ctx, in.StoreID)
	if err := parentExists(ok, err, "store", in.StoreID); err != nil {
		return nil, err
	}

	if err := s.checkUnique(ctx, in.Registration, in.Email, in.StoreID, 0); err != nil {
		return nil, err
	}

	c := &model.Contact{
		Name:         in.Name,
		Registration: in.Registration,
		Role:         role,
		Phone:        in.Phone,
		Email:        in.Email,
		Notes:        in.Notes,
		StoreID:      in.StoreID,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, duplicate(err, "create contact")
	}
	return c, nil
}

// Update перепроверяет matricula и email, исключая сам контакт. Loja не меняется.
func (s *ContactService) Update(ctx context.Context, id int64, in ContactInput) (*model.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "contact", id)
	}

	role, err := in.validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in.Registration, in.Email, c.StoreID, id); err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Registration = in.Registration
	c.Role = role
	c.Phone = in.Phone
	c.Email = in.Email
	c.Notes = in.Notes

	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, duplicate(err, fmt.Sprintf("update contact %d", id))
	}
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	ok, err := s.contacts.Exists(ctx, id)
	if err := mustExist(ok, err, "contact", id); err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return nil
}

// checkUnique: matricula уникальна глобально, непустой email уникален в пределах loja.
func (s *ContactService) checkUnique(ctx context.Context, registration, email string, storeID, excludeID int64) error {
	taken, err := s.contacts.ExistsByRegistration(ctx, registration, excludeID)
	if err != nil {
		return fmt.Errorf("check registration: %w", err)
	}
	if taken {
		return fmt.Errorf("registration %s: %w", registration, ErrConflict)
	}

	if strings.TrimSpace(email) == "" {
		return nil
	}
	taken, err = s.contacts.ExistsByEmailInStore(ctx, email, storeID, excludeID)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return fmt.Errorf("email %s in store %d: %w", email, storeID, ErrConflict)
	}
	return nil
}
