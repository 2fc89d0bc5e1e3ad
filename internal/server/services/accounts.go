package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dmitrijs2005/identcore/internal/common"
	"github.com/dmitrijs2005/identcore/internal/cryptox"
	"github.com/dmitrijs2005/identcore/internal/logging"
	"github.com/dmitrijs2005/identcore/internal/server/document"
	"github.com/dmitrijs2005/identcore/internal/server/models"
	"github.com/dmitrijs2005/identcore/internal/server/repositories/accounts"
	"github.com/go-playground/validator/v10"
)

// Caller-visible messages.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgInvalidSession     = "Invalid or expired session."
	MsgUsernameTaken      = "Username already taken."
	MsgEmailTaken         = "Email already registered."
	MsgPhoneTaken         = "Phone already registered."
	MsgUserExists         = "User already exists."
	MsgUserNotFound       = "User not found."
	MsgProfileUpdated     = "Profile updated successfully."
	MsgSignedOut          = "Signed out."
)

// CredentialCodec hashes and verifies passwords.
type CredentialCodec interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer mints, verifies and revokes session tokens.
type TokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Verify(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// RegisterInput is a registration candidate. Empty strings mean absent.
type RegisterInput struct {
	Username  string         `json:"username" validate:"required"`
	Email     string         `json:"email" validate:"omitempty,email"`
	Phone     string         `json:"phone"`
	Password  string         `json:"password"`
	Providers []string       `json:"providers"`
	IPAddress string         `json:"ip_address" validate:"required"`
	URL       string         `json:"url" validate:"required"`
	Avatar    string         `json:"avatar"`
	Firstname string         `json:"firstname"`
	Lastname  string         `json:"lastname"`
	Metadata  map[string]any `json:"metadata"`
}

// UpdateResult acknowledges a profile update. SessionToken is set when the
// update renamed the account and replaces the caller's token.
type UpdateResult struct {
	Name         string
	Message      string
	SessionToken string
}

type AccountServiceOptions struct {
	TokenTTL  time.Duration
	Sequences document.SequencePolicy
	Now       func() time.Time
}

// AccountService orchestrates registration, sign-in, session resolution,
// profile updates and sign-out. It holds no per-request state.
type AccountService struct {
	accounts  accounts.Repository
	codec     CredentialCodec
	tokens    TokenIssuer
	pruner    document.Pruner
	validate  *validator.Validate
	logger    logging.Logger
	ttl       time.Duration
	now       func() time.Time
	dummyHash string
}

func NewAccountService(repo accounts.Repository, codec CredentialCodec, tokens TokenIssuer, logger logging.Logger, opts AccountServiceOptions) *AccountService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &AccountService{
		accounts: repo,
		codec:    codec,
		tokens:   tokens,
		pruner:   document.Pruner{Sequences: opts.Sequences},
		validate: newValidator(),
		logger:   logger.With("module", "accounts"),
		ttl:      opts.TokenTTL,
		now:      opts.Now,
	}
	// verified against on unknown identifiers so a miss costs as much as a
	// wrong password
	if h, err := codec.Hash("identcore-dummy-password"); err == nil {
		s.dummyHash = h
	}
	return s
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// timestamp is the service clock at the millisecond precision every store keeps.
func (s *AccountService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.Account, error) {
	provider, err := singleProvider(in.Providers)
	if err != nil {
		return nil, err
	}

	credentialed := provider == models.ProviderEmail || provider == models.ProviderPhone
	if credentialed {
		contact, field := in.Email, models.FieldEmail
		if provider == models.ProviderPhone {
			contact, field = in.Phone, models.FieldPhone
		}
		if contact == "" {
			return nil, common.New(common.KindMissingField, fmt.Sprintf("%s is required for the %s provider.", field, provider)).WithReason(field)
		}
		if in.Password == "" {
			return nil, common.New(common.KindMissingField, "password is required.").WithReason(models.FieldPassword)
		}
	}

	if err := s.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	account := &models.Account{
		Username:   in.Username,
		Email:      in.Email,
		Phone:      in.Phone,
		Providers:  []string{provider},
		IPAddress:  in.IPAddress,
		URL:        in.URL,
		IsVerified: 0,
		Avatar:     in.Avatar,
		Firstname:  in.Firstname,
		Lastname:   in.Lastname,
		Metadata:   in.Metadata,
	}

	if credentialed {
		hash, err := s.codec.Hash(in.Password)
		if err != nil {
			if errors.Is(err, cryptox.ErrPasswordTooLong) {
				return nil, common.New(common.KindInvalidField, "password is too long.").WithReason(models.FieldPassword)
			}
			return nil, s.internal(ctx, "hash password", err)
		}
		account.PasswordHash = hash
	}

	existing, err := s.accounts.FindByAnyIdentifier(ctx, in.Username, in.Email, in.Phone)
	switch {
	case err == nil:
		return nil, duplicateError(existing, in)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.internal(ctx, "uniqueness lookup", err)
	}

	token, err := s.tokens.Issue(in.Username, s.ttl)
	if err != nil {
		return nil, s.internal(ctx, "issue token", err)
	}
	now := s.timestamp()
	account.SessionToken = token
	account.CreatedAt = now
	account.UpdatedAt = now

	stored, err := s.accounts.Insert(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.logger.Warn(ctx, "registration lost a uniqueness race", "username", in.Username)
			return nil, common.Wrap(common.KindConflict, err, MsgUserExists)
		}
		return nil, s.internal(ctx, "insert account", err)
	}

	s.logger.Info(ctx, "account registered", "id", stored.ID, "provider", provider)
	return document.Canonical(stored), nil
}

// Authenticate signs in with a username, email or phone and a password.
// Unknown identifiers and wrong passwords fail identically.
func (s *AccountService) Authenticate(ctx context.Context, identifier, password, sourceIP string) (*models.Account, error) {
	if identifier == "" {
		return nil, common.New(common.KindMissingField, "identifier is required.").WithReason("identifier")
	}
	if password == "" {
		return nil, common.New(common.KindMissingField, "password is required.").WithReason(models.FieldPassword)
	}

	account, err := s.accounts.FindByAnyIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.codec.Verify(password, s.dummyHash)
			return nil, common.New(common.KindUnauthorized, MsgInvalidCredentials)
		}
		return nil, s.internal(ctx, "identifier lookup", err)
	}

	if !s.codec.Verify(password, account.PasswordHash) {
		s.logger.Info(ctx, "sign-in rejected", "id", account.ID)
		return nil, common.New(common.KindUnauthorized, MsgInvalidCredentials)
	}

	token, err := s.tokens.Issue(account.Username, s.ttl)
	if err != nil {
		return nil, s.internal(ctx, "issue token", err)
	}

	now := s.timestamp()
	updated, err := s.accounts.SetSession(ctx, account.ID, models.SessionUpdate{
		Token:     token,
		SourceIP:  sourceIP,
		LastLogin: now,
		UpdatedAt: now,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.New(common.KindUnauthorized, MsgInvalidCredentials)
		}
		return nil, s.internal(ctx, "store session", err)
	}

	s.logger.Info(ctx, "signed in", "id", updated.ID)
	return document.Canonical(updated), nil
}

// ResolveSession returns the account a valid session token belongs to.
func (s *AccountService) ResolveSession(ctx context.Context, token string) (*models.Account, error) {
	subject, err := s.verify(ctx, token)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.New(common.KindUnauthorized, MsgInvalidSession)
		}
		return nil, s.internal(ctx, "subject lookup", err)
	}

	return document.Canonical(account), nil
}

// UpdateProfile merges the non-empty entries of fields into the account
// holding token. The "token" key, if present in fields, is ignored.
// Renaming the account mints a token for the new username, stored in the
// same merge, and revokes the old one.
func (s *AccountService) UpdateProfile(ctx context.Context, token string, fields map[string]any) (*UpdateResult, error) {
	if token == "" {
		return nil, common.New(common.KindMissingField, "token is required.").WithReason(models.FieldToken)
	}

	subject, err := s.verify(ctx, token)
	if err != nil {
		return nil, err
	}

	proposed := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != models.FieldToken {
			proposed[k] = v
		}
	}

	pruned := s.pruner.Prune(proposed)
	pruned[models.FieldUpdatedAt] = s.timestamp()

	update, err := models.CoerceUpdate(pruned)
	if err != nil {
		var fe *models.FieldError
		if errors.As(err, &fe) {
			return nil, common.New(common.KindInvalidField, fe.Error()+".").WithReason(fe.Field)
		}
		return nil, s.internal(ctx, "coerce update", err)
	}
	if email, ok := update[models.FieldEmail].(string); ok {
		if err := s.validate.Var(email, "email"); err != nil {
			return nil, common.New(common.KindInvalidField, "email must be a valid email.").WithReason(models.FieldEmail)
		}
	}

	var renewed string
	if username, ok := update[models.FieldUsername].(string); ok && username != subject {
		renewed, err = s.tokens.Issue(username, s.ttl)
		if err != nil {
			return nil, s.internal(ctx, "issue token", err)
		}
		update[models.FieldSessionToken] = renewed
	}

	updated, err := s.accounts.MergeUpdate(ctx, token, update)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, common.New(common.KindNotFound, MsgUserNotFound)
		case errors.Is(err, common.ErrorConflict):
			return nil, common.Wrap(common.KindConflict, err, "Update conflicts with an existing account.")
		}
		return nil, s.internal(ctx, "merge update", err)
	}

	if renewed != "" {
		if err := s.tokens.Revoke(ctx, token); err != nil {
			s.logger.Warn(ctx, "revoke renamed session", "id", updated.ID, "error", err)
		}
	}

	s.logger.Info(ctx, "profile updated", "id", updated.ID, "renamed", renewed != "")
	return &UpdateResult{Name: updated.Username, Message: MsgProfileUpdated, SessionToken: renewed}, nil
}

// SignOut revokes token and detaches it from its account. Signing out an
// already revoked token succeeds.
func (s *AccountService) SignOut(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.New(common.KindMissingField, "token is required.").WithReason(models.FieldToken)
	}

	_, err := s.verify(ctx, token)
	revoked := errors.Is(err, common.ErrTokenRevoked)
	if err != nil && !revoked {
		return "", err
	}

	if !revoked {
		if err := s.tokens.Revoke(ctx, token); err != nil {
			return "", s.internal(ctx, "revoke token", err)
		}
	}

	if err := s.accounts.ClearSession(ctx, token, s.timestamp()); err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", s.internal(ctx, "clear session", err)
	}

	return MsgSignedOut, nil
}

// verify maps token failures to UNAUTHORIZED and revocation-store failures
// to INTERNAL. A revoked token yields an UNAUTHORIZED error wrapping
// common.ErrTokenRevoked.
func (s *AccountService) verify(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.New(common.KindUnauthorized, MsgInvalidSession)
	}
	subject, err := s.tokens.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) || errors.Is(err, common.ErrTokenRevoked) {
			return "", common.Wrap(common.KindUnauthorized, err, MsgInvalidSession)
		}
		return "", s.internal(ctx, "verify token", err)
	}
	return subject, nil
}

func (s *AccountService) internal(ctx context.Context, op string, err error) error {
	s.logger.Error(ctx, "account operation failed", "op", op, "error", err)
	return common.Wrap(common.KindInternal, err, "internal error")
}

// singleProvider requires exactly one provider tag. Tags are counted as
// given, so ["email", "EMAIL"] is two providers.
func singleProvider(providers []string) (string, error) {
	if len(providers) != 1 {
		return "", common.New(common.KindInvalidProvider, "Exactly one provider is required.").WithReason(models.FieldProviders)
	}
	p := strings.ToLower(strings.TrimSpace(providers[0]))
	if _, ok := models.KnownProviders[p]; !ok {
		return "", common.New(common.KindInvalidProvider, fmt.Sprintf("Unsupported provider %q.", providers[0])).WithReason(models.FieldProviders)
	}
	return p, nil
}

// duplicateError classifies an existing match with username taking
// precedence over email, and email over phone.
func duplicateError(existing *models.Account, in RegisterInput) error {
	switch {
	case existing.Username == in.Username:
		return common.New(common.KindAlreadyExists, MsgUsernameTaken).WithReason(models.FieldUsername)
	case in.Email != "" && existing.Email == in.Email:
		return common.New(common.KindAlreadyExists, MsgEmailTaken).WithReason(models.FieldEmail)
	case in.Phone != "" && existing.Phone == in.Phone:
		return common.New(common.KindAlreadyExists, MsgPhoneTaken).WithReason(models.FieldPhone)
	}
	return common.New(common.KindAlreadyExists, MsgUserExists)
}

func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return common.Wrap(common.KindInvalidField, err, "validation failed.")
	}
	fe := errs[0]
	if fe.Tag() == "required" {
		return common.New(common.KindMissingField, fmt.Sprintf("%s is required.", fe.Field())).WithReason(fe.Field())
	}
	return common.New(common.KindInvalidField, fmt.Sprintf("%s must be a valid %s.", fe.Field(), fe.Tag())).WithReason(fe.Field())
}
