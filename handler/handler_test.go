package handler

import (
	"bytes"
	"context"
	"cruise_manager/database"
	"cruise_manager/helper"
	"cruise_manager/middleware"
	"cruise_manager/model"
	"cruise_manager/validate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope[T any] struct {
	Status  string `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message"`
	Error   any    `json:"error"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	v1 := app.Group("/api/v1", middleware.AppContext())
	v1.Get("/club-cards", GetClubCards)
	v1.Post("/quotes", validate.Quote(), CreateQuote)
	v1.Post("/quotes/selection", validate.SelectionAction(), ApplySelectionAction)
	v1.Get("/payments/config", GetPaymentConfig)
	v1.Post("/payments", validate.CreatePayment(), CreatePayment)
	v1.Post("/contact", validate.Contact(), SendContact)
	v1.Post("/admin/payments/:paymentId/refund", validate.GetById("paymentId"), validate.RefundPayment(), RefundPayment)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

type fakeGateway struct {
	payment *model.SquarePayment
	refund  *model.SquareRefund
	err     error
	calls   int

	charges []model.SquareCreatePayment
	refunds []model.SquareRefundPayment
}

func (f *fakeGateway) CreatePayment(ctx context.Context, req model.SquareCreatePayment) (*model.SquarePayment, error) {
	f.calls++
	f.charges = append(f.charges, req)
	return f.payment, f.err
}

func (f *fakeGateway) RefundPayment(ctx context.Context, req model.SquareRefundPayment) (*model.SquareRefund, error) {
	f.calls++
	f.refunds = append(f.refunds, req)
	return f.refund, f.err
}

func (f *fakeGateway) PublicConfig() model.PaymentConfig {
	return model.PaymentConfig{ApplicationId: "sandbox-app", LocationId: "L1", Environment: "sandbox"}
}

func withGateway(t *testing.T, g PaymentGateway) {
	t.Helper()
	prev := Gateway
	Gateway = g
	t.Cleanup(func() { Gateway = prev })
}

// withDB points database.DB at a fresh in-memory sqlite for the test.
func withDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, otherwise each one opens its own empty memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Cruise{}, &model.CruiseAvailability{}, &model.Payment{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})
	return db
}

func withRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	prev := helper.Redis
	helper.Redis = client
	t.Cleanup(func() {
		helper.Redis = prev
		_ = client.Close()
	})
	return mr
}
