package expense

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/expensio/internal/expense/inbound"
	"github.com/shandysiswandi/expensio/internal/expense/outbound/db"
	"github.com/shandysiswandi/expensio/internal/expense/outbound/mq"
	"github.com/shandysiswandi/expensio/internal/expense/outbound/receipt"
	"github.com/shandysiswandi/expensio/internal/expense/usecase"
	"github.com/shandysiswandi/expensio/internal/pkg/clock"
	"github.com/shandysiswandi/expensio/internal/pkg/config"
	"github.com/shandysiswandi/expensio/internal/pkg/idempotency"
	"github.com/shandysiswandi/expensio/internal/pkg/instrument"
	"github.com/shandysiswandi/expensio/internal/pkg/messaging"
	"github.com/shandysiswandi/expensio/internal/pkg/router"
	"github.com/shandysiswandi/expensio/internal/pkg/storage"
	"github.com/shandysiswandi/expensio/internal/pkg/uid"
	"github.com/shandysiswandi/expensio/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	repoReceipt := receipt.NewStore(dep.Storage, dep.Config.GetString("modules.expense.receipt_bucket"), dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		RepoReceipt:   repoReceipt,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		UUID:          dep.UUID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
