// Package session gestiona las sesiones de la tienda: lo que el formulario de acceso delega en onLogin y onRegister,
// y los datos del saludo de la cabecera.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zapshop-api/internal/application/auth"
	"github.com/jhoicas/zapshop-api/internal/application/dto"
	"github.com/jhoicas/zapshop-api/internal/domain"
	"github.com/jhoicas/zapshop-api/internal/domain/entity"
	"github.com/jhoicas/zapshop-api/internal/domain/repository"
	"github.com/jhoicas/zapshop-api/pkg/jwt"
	"github.com/jhoicas/zapshop-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Service crea clientes registrados y emite/cierra sesiones.
type Service struct {
	customers     repository.CustomerRepository
	users         repository.UserRepository
	jwtCfg        JWTConfig
	avatarBaseURL string
	revoked       *Revocations
	log           *logger.Logger
}

// NewService construye el servicio de sesiones.
func NewService(customers repository.CustomerRepository, users repository.UserRepository, jwtCfg JWTConfig, avatarBaseURL string, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		customers:     customers,
		users:         users,
		jwtCfg:        jwtCfg,
		avatarBaseURL: avatarBaseURL,
		revoked:       NewRevocations(),
		log:           log.Named("session"),
	}
}

// Start abre una sesión para el email: primero clientes, luego staff.
// ErrNotFound si el email dejó de existir entre la validación y la sesión.
func (s *Service) Start(ctx context.Context, email string) (*dto.SessionResponse, error) {
	c, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return s.issueCustomer(c)
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	tok, claims, err := jwt.Generate(s.jwtCfg.Secret, u.ID, u.Email, jwt.KindStaff, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("account_id", u.ID).Str("kind", jwt.KindStaff).Msg("sesión iniciada")
	return &dto.SessionResponse{
		Token:     tok,
		ExpiresAt: claims.ExpiresAt.Time,
		Kind:      jwt.KindStaff,
		Email:     u.Email,
		Name:      u.Name,
	}, nil
}

// Register persiste el cliente asignándole id y avatar, y abre su sesión.
func (s *Service) Register(ctx context.Context, data auth.RegisterData) (*dto.SessionResponse, error) {
	now := time.Now().UTC()
	c := &entity.Customer{
		ID:        uuid.NewString(),
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		AvatarURL: entity.AvatarURL(s.avatarBaseURL, data.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("registrar cliente: %w", err)
	}
	s.log.Info().Str("customer_id", c.ID).Msg("cliente registrado")
	return s.issueCustomer(c)
}

// Glance datos para la cabecera. Sin token devuelve LoggedIn=false.
func (s *Service) Glance(ctx context.Context, token string) (*dto.SessionGlance, error) {
	if token == "" {
		return &dto.SessionGlance{}, nil
	}
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	switch claims.Kind {
	case jwt.KindCustomer:
		c, err := s.customers.GetByID(ctx, claims.AccountID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrUnauthorized
		}
		return &dto.SessionGlance{
			LoggedIn:  true,
			Greeting:  Greeting(c.Name),
			FirstName: FirstName(c.Name),
			Kind:      jwt.KindCustomer,
			Customer:  toCustomerResponse(c),
		}, nil
	case jwt.KindStaff:
		u, err := s.users.FindByEmail(ctx, claims.Email)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, domain.ErrUnauthorized
		}
		return &dto.SessionGlance{
			LoggedIn:  true,
			Greeting:  Greeting(u.Name),
			FirstName: FirstName(u.Name),
			Kind:      jwt.KindStaff,
		}, nil
	}
	return nil, domain.ErrUnauthorized
}

// Logout cierra la sesión del token hasta su expiración.
func (s *Service) Logout(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	s.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
	s.log.Info().Str("account_id", claims.AccountID).Msg("sesión cerrada")
	return nil
}

// ListCustomers lista clientes si el token pertenece al staff.
func (s *Service) ListCustomers(ctx context.Context, token string, limit, offset int) ([]*dto.CustomerResponse, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != jwt.KindStaff {
		return nil, domain.ErrForbidden
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := s.customers.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func (s *Service) parse(token string) (*jwt.Claims, error) {
	claims, err := jwt.Parse(s.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if s.revoked.Revoked(claims.ID) {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *Service) issueCustomer(c *entity.Customer) (*dto.SessionResponse, error) {
	tok, claims, err := jwt.Generate(s.jwtCfg.Secret, c.ID, c.Email, jwt.KindCustomer, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("account_id", c.ID).Str("kind", jwt.KindCustomer).Msg("sesión iniciada")
	return &dto.SessionResponse{
		Token:     tok,
		ExpiresAt: claims.ExpiresAt.Time,
		Kind:      jwt.KindCustomer,
		Email:     c.Email,
		Name:      c.Name,
		Customer:  toCustomerResponse(c),
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		AvatarURL: c.AvatarURL,
		CreatedAt: c.CreatedAt,
	}
}
