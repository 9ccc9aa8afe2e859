package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/expensio/internal/identity/entity"
	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/goerror"
	"github.com/shandysiswandi/expensio/internal/pkg/goroutine"
	"github.com/shandysiswandi/expensio/internal/pkg/hash"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
)

type fakeUser struct {
	id        int64
	email     string
	fullName  string
	password  string
	role      entity.UserRole
	otpSecret *string
	otpExpiry *time.Time
	createdAt time.Time
	updatedAt time.Time
}

// fakeRepo emulates the single-row conditional updates of the real store.
type fakeRepo struct {
	users   map[string]*fakeUser
	nextErr error
}

func newFakeRepo(users ...*fakeUser) *fakeRepo {
	m := make(map[string]*fakeUser, len(users))
	for _, u := range users {
		m[u.email] = u
	}
	return &fakeRepo{users: m}
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.nextErr != nil {
		return nil, f.nextErr
	}

	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &entity.User{
		ID:        u.id,
		Email:     u.email,
		FullName:  u.fullName,
		Role:      u.role,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.id == id {
			return &entity.User{ID: u.id, Email: u.email, FullName: u.fullName, Role: u.role}, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) GetUserLoginInfo(_ context.Context, email string) (*entity.UserLoginInfo, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &entity.UserLoginInfo{
		ID:       u.id,
		Email:    u.email,
		FullName: u.fullName,
		Role:     u.role,
		Password: u.password,
	}, nil
}

func (f *fakeRepo) GetUserChallenge(_ context.Context, email string) (*entity.UserChallenge, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &entity.UserChallenge{
		UserID:    u.id,
		Email:     u.email,
		OTPSecret: u.otpSecret,
		OTPExpiry: u.otpExpiry,
	}, nil
}

func (f *fakeRepo) GetUserList(_ context.Context, filter entity.UserListFilterData) ([]entity.User, int64, error) {
	out := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, entity.User{ID: u.id, Email: u.email, FullName: u.fullName, Role: u.role})
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.NewUser, passwordHash string) error {
	if f.nextErr != nil {
		return f.nextErr
	}

	if _, ok := f.users[user.Email]; ok {
		return goerror.ErrConflict
	}

	f.users[user.Email] = &fakeUser{
		id:       user.ID,
		email:    user.Email,
		fullName: user.FullName,
		password: passwordHash,
		role:     user.Role,
	}
	return nil
}

func (f *fakeRepo) SetChallengeIfExpired(_ context.Context, email, code string, expiresAt, now time.Time) (bool, error) {
	if f.nextErr != nil {
		return false, f.nextErr
	}

	u, ok := f.users[email]
	if !ok {
		return false, nil
	}

	if u.otpSecret != nil && u.otpExpiry != nil && !u.otpExpiry.Before(now) {
		return false, nil
	}

	u.otpSecret = &code
	u.otpExpiry = &expiresAt
	return true, nil
}

func (f *fakeRepo) ClearChallengeByCode(_ context.Context, email, code string) (bool, error) {
	if f.nextErr != nil {
		return false, f.nextErr
	}

	u, ok := f.users[email]
	if !ok || u.otpSecret == nil || *u.otpSecret != code {
		return false, nil
	}

	u.otpSecret = nil
	u.otpExpiry = nil
	return true, nil
}

func (f *fakeRepo) UpdateUserPassword(_ context.Context, userID int64, passwordHash string) error {
	for _, u := range f.users {
		if u.id == userID {
			u.password = passwordHash
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) UpdateUserRole(_ context.Context, userID int64, role entity.UserRole) error {
	for _, u := range f.users {
		if u.id == userID {
			u.role = role
			return nil
		}
	}
	return nil
}

type sentOTP struct {
	To   string
	Code string
}

type fakeMailer struct {
	sent []sentOTP
	err  error
}

func (f *fakeMailer) SendOTP(_ context.Context, msg OTPEmail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentOTP{To: msg.To, Code: msg.Code})
	return nil
}

type fakePublisher struct {
	events []UserRegisteredEvent
	err    error
}

func (f *fakePublisher) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, msg)
	return nil
}

type fakeCodeGen struct {
	codes []string
	calls int
}

func (f *fakeCodeGen) Generate() (string, error) {
	if f.calls >= len(f.codes) {
		return "", errors.New("out of codes")
	}
	c := f.codes[f.calls]
	f.calls++
	return c, nil
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

type fakeJWT struct {
	token string
	err   error
}

func (f *fakeJWT) Generate(int64, string, string) (string, error) { return f.token, f.err }
func (f *fakeJWT) Verify(string) (jwt.Claims, error)              { return jwt.Claims{}, nil }

type fixture struct {
	uc    *Usecase
	repo  *fakeRepo
	mail  *fakeMailer
	pub   *fakePublisher
	gen   *fakeCodeGen
	clock *fixedClock
	grm   *goroutine.Manager
}

func newFixture(t *testing.T, repo *fakeRepo) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("building validator: %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  identity:\n    otp_ttl_minutes: 5\n"))
	if err != nil {
		t.Fatalf("building config: %v", err)
	}

	mailer := &fakeMailer{}
	pub := &fakePublisher{}
	gen := &fakeCodeGen{codes: []string{"482913", "771034", "205566"}}
	clk := &fixedClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	grm := goroutine.NewManager(4)

	uc := New(Dependency{
		RepoDB:        repo,
		RepoMail:      mailer,
		RepoMessaging: pub,
		Validator:     v,
		Config:        cfg,
		Bcrypt:        hash.NewBcrypt(4, ""),
		UID:           &seqID{},
		CodeGen:       gen,
		Clock:         clk,
		JWT:           &fakeJWT{token: "signed-token"},
		Instrument:    instrument.NewNoop(),
		Goroutine:     grm,
	})

	return &fixture{uc: uc, repo: repo, mail: mailer, pub: pub, gen: gen, clock: clk, grm: grm}
}

type seqID struct {
	last int64
}

func (s *seqID) Generate() int64 {
	s.last++
	return s.last
}

func assertErrCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %v, got nil", code)
	}

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}

	if gerr.Code() != code {
		t.Fatalf("expected error code %v, got %v (message %q)", code, gerr.Code(), gerr.Msg())
	}
}
