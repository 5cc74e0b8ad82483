package services

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gummi-coder/Novora-sub009/config"
	mstore "github.com/gummi-coder/Novora-sub009/database/memory"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/locker"
	"github.com/gummi-coder/Novora-sub009/mocks"
	"github.com/gummi-coder/Novora-sub009/net"
	"github.com/gummi-coder/Novora-sub009/pkg/apperror"
	"github.com/gummi-coder/Novora-sub009/pkg/audit"
	"github.com/gummi-coder/Novora-sub009/pkg/log"
)

type fixture struct {
	store     *mstore.Store
	queue     *mocks.MockQueuer
	locker    *locker.MemoryLocker
	service   *WebhookService
	processor *DeliveryProcessor
}

func provideFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	logger := log.NewLogger(io.Discard)
	reporter, err := apperror.NewReporter(logger, "", "test")
	require.NoError(t, err)

	store := mstore.NewStore()
	q := mocks.NewMockQueuer(ctrl)
	lk := locker.NewMemoryLocker()

	f := &fixture{
		store:  store,
		queue:  q,
		locker: lk,
		service: &WebhookService{
			WebhookRepo:  store.WebhookRepo(),
			DeliveryRepo: store.DeliveryRepo(),
			Queue:        q,
			Reporter:     reporter,
			Audit:        audit.NewLogger(logger),
			Logger:       logger,
		},
		processor: &DeliveryProcessor{
			WebhookRepo:  store.WebhookRepo(),
			DeliveryRepo: store.DeliveryRepo(),
			Queue:        q,
			Dispatcher:   net.NewDispatcher("", 0, logger),
			Locker:       lk,
			Audit:        audit.NewLogger(logger),
			Logger:       logger,
			Config:       config.DefaultConfiguration.Delivery,
		},
	}

	return f
}

func requireCode(t *testing.T, err error, code apperror.Code) {
	t.Helper()

	require.Error(t, err)
	got, ok := apperror.CodeOf(err)
	require.True(t, ok, "not an application error: %v", err)
	require.Equal(t, code, got)
}
