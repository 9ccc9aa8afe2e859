package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/clock"
	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/goroutine"
	"github.com/shandysiswandi/expensio/internal/pkg/hash"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
	"github.com/shandysiswandi/expensio/internal/pkg/otp"
	"github.com/shandysiswandi/expensio/internal/pkg/uid"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID   int64
	Email    string
	FullName string
}

type OTPEmail struct {
	To        string
	Code      string
	ExpiresAt time.Time
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoMail interface {
	SendOTP(ctx context.Context, msg OTPEmail) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserLoginInfo(ctx context.Context, email string) (*entity.UserLoginInfo, error)
	GetUserChallenge(ctx context.Context, email string) (*entity.UserChallenge, error)
	GetUserList(ctx context.Context, filter entity.UserListFilterData) ([]entity.User, int64, error)

	CreateUser(ctx context.Context, user entity.NewUser, passwordHash string) error

	// SetChallengeIfExpired writes code/expiresAt on the user row only when no
	// unexpired code exists at instant now. It reports whether the write won.
	SetChallengeIfExpired(ctx context.Context, email, code string, expiresAt, now time.Time) (bool, error)

	// ClearChallengeByCode clears both code and expiry in one statement,
	// conditional on the stored code matching. It reports whether a row changed.
	ClearChallengeByCode(ctx context.Context, email, code string) (bool, error)

	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateUserRole(ctx context.Context, userID int64, role entity.UserRole) error
}

type Usecase struct {
	repoDB        repoDB
	repoMail      repoMail
	repoMessaging repoMessaging
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	uid           uid.NumberID
	codeGen       otp.Generator
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMail      repoMail
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	UID           uid.NumberID
	CodeGen       otp.Generator
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMail:      dep.RepoMail,
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		codeGen:       dep.CodeGen,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func (s *Usecase) challengeTTL() time.Duration {
	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return ttl
}
