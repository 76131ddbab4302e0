package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/jonboulle/clockwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultRolID is assigned on self-registration (seeded as "operador").
const DefaultRolID int64 = 2

const tokenTTL = 24 * time.Hour

// bcrypt only hashes the first 72 bytes and rejects longer input.
const maxPasswordBytes = 72

var ErrCredenciales = errors.New("email o password incorrectos")

type RolService struct {
	Repo      repositories.RolRepository
	RequestID string
}

func (s RolService) List(ctx context.Context) ([]models.Rol, error) {
	return s.Repo.List(ctx)
}

func (s RolService) Get(ctx context.Context, id int64) (models.Rol, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s RolService) Save(ctx context.Context, rol models.Rol) (int64, error) {
	rol.Nombre = strings.ToLower(utils.NormalizeSpace(rol.Nombre))
	if err := validateStruct(rol); err != nil {
		return 0, err
	}
	seen := map[string]bool{}
	perms := make([]string, 0, len(rol.Permisos))
	for _, p := range rol.Permisos {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		perms = append(perms, p)
	}
	rol.Permisos = perms

	id, err := s.Repo.Save(ctx, rol)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "roles", "save", fmt.Sprintf("rol_id=%d permisos=%s", id, strings.Join(perms, ",")))
	return id, nil
}

func (s RolService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s RolService) ListPermisos(ctx context.Context) ([]models.Permiso, error) {
	return s.Repo.ListPermisos(ctx)
}

func (s RolService) CreatePermiso(ctx context.Context, p models.Permiso) (int64, error) {
	p.Codigo = strings.ToLower(utils.TrimOrEmpty(p.Codigo))
	if err := validateStruct(p); err != nil {
		return 0, err
	}
	return s.Repo.CreatePermiso(ctx, p)
}

func (s RolService) DeletePermiso(ctx context.Context, id int64) error {
	return s.Repo.DeletePermiso(ctx, id)
}

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID   int64    `json:"user_id"`
	Rol      string   `json:"rol"`
	Permisos []string `json:"permisos"`
	jwt.RegisteredClaims
}

type UsuarioInput struct {
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	RolID    int64  `json:"rol_id" binding:"gte=0"`
	Activo   *bool  `json:"activo"`
}

type AuthService struct {
	Repo      repositories.UsuarioRepository
	Secret    []byte
	Clock     clockwork.Clock
	RequestID string
}

func (s AuthService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

func (s AuthService) toUsuario(in UsuarioInput, requirePassword bool) (models.Usuario, error) {
	in.Nombre = utils.NormalizeSpace(in.Nombre)
	in.Email = strings.ToLower(utils.TrimOrEmpty(in.Email))
	u := models.Usuario{
		Nombre: in.Nombre,
		Email:  in.Email,
		RolID:  in.RolID,
		Activo: true,
	}
	if in.Activo != nil {
		u.Activo = *in.Activo
	}
	if err := validateStruct(in); err != nil {
		return u, err
	}
	var c fieldCheck
	if requirePassword {
		c.required("password", in.Password)
	}
	c.rule(len(in.Password) <= maxPasswordBytes, "password", fmt.Sprintf("maximo %d bytes", maxPasswordBytes))
	if c.err != nil {
		return u, c.err
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return u, domain.InternalError{Msg: "no se pudo procesar el password", Err: err}
		}
		u.PasswordHash = string(hash)
	}
	return u, nil
}

// Login verifies credentials and issues a signed token carrying rol and permisos.
func (s AuthService) Login(ctx context.Context, email, password string) (string, models.Usuario, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.Usuario{}, ErrCredenciales
		}
		return "", models.Usuario{}, err
	}
	if !u.Activo {
		return "", models.Usuario{}, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.Usuario{}, ErrCredenciales
	}

	u.Permisos, err = s.Repo.PermisosDeRol(ctx, u.RolID)
	if err != nil {
		return "", models.Usuario{}, err
	}

	token, err := s.IssueToken(u)
	if err != nil {
		return "", models.Usuario{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d rol=%s", u.ID, u.Rol))
	return token, u, nil
}

func (s AuthService) IssueToken(u models.Usuario) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   u.ID,
		Rol:      u.Rol,
		Permisos: u.Permisos,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", u.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "no se pudo firmar el token", Err: err}
	}
	return signed, nil
}

// ParseToken validates signature and expiry.
func ParseToken(secret []byte, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token invalido")
	}
	return claims, nil
}

// Register creates a self-service usuario with the default rol.
func (s AuthService) Register(ctx context.Context, in UsuarioInput) (models.Usuario, error) {
	in.RolID = DefaultRolID
	in.Activo = nil
	return s.CreateUsuario(ctx, in)
}

func (s AuthService) CreateUsuario(ctx context.Context, in UsuarioInput) (models.Usuario, error) {
	u, err := s.toUsuario(in, true)
	if err != nil {
		return u, err
	}
	u.ID, err = s.Repo.Create(ctx, u)
	if err != nil {
		return u, err
	}
	utils.LogEvent(s.RequestID, "usuarios", "create", fmt.Sprintf("user_id=%d", u.ID))
	return s.Repo.GetByID(ctx, u.ID)
}

func (s AuthService) UpdateUsuario(ctx context.Context, id int64, in UsuarioInput) error {
	u, err := s.toUsuario(in, false)
	if err != nil {
		return err
	}
	u.ID = id
	return s.Repo.Update(ctx, u)
}

func (s AuthService) ListUsuarios(ctx context.Context) ([]models.Usuario, error) {
	return s.Repo.List(ctx)
}

func (s AuthService) GetUsuario(ctx context.Context, id int64) (models.Usuario, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s AuthService) DeleteUsuario(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
