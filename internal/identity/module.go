package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/expensio/internal/identity/inbound"
	"github.com/shandysiswandi/expensio/internal/identity/outbound/db"
	"github.com/shandysiswandi/expensio/internal/identity/outbound/mail"
	"github.com/shandysiswandi/expensio/internal/identity/outbound/mq"
	"github.com/shandysiswandi/expensio/internal/identity/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/clock"
	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/goroutine"
	"github.com/shandysiswandi/expensio/internal/pkg/hash"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/jwt"
	pkgmail "github.com/shandysiswandi/expensio/internal/pkg/mail"
	"github.com/shandysiswandi/expensio/internal/pkg/messaging"
	"github.com/shandysiswandi/expensio/internal/pkg/otp"
	"github.com/shandysiswandi/expensio/internal/pkg/router"
	"github.com/shandysiswandi/expensio/internal/pkg/uid"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       pkgmail.Mail               `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	CodeGen    otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := mail.NewMailer(dep.Mail, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMail:      repoMail,
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		CodeGen:       dep.CodeGen,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
